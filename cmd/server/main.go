package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	docs "main/docs"
	appblotter "main/internal/application/service/blotter"
	appmarketstate "main/internal/application/service/marketstate"
	appmonitoring "main/internal/application/service/monitoring"
	apppositions "main/internal/application/service/positions"
	"main/internal/config"
	infrasecuritymaster "main/internal/infrastructure/securitymaster"
	infrasnapshots "main/internal/infrastructure/snapshotstore"
	infratrading "main/internal/infrastructure/trading"
	infrahttp "main/internal/interfaces/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()

	tradeRepo, err := infratrading.NewRepository(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf("failed to init trades repo: %v", err)
	}
	defer tradeRepo.Close()

	securityMasterRepo, err := infrasecuritymaster.NewRepository(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf("failed to init security master repo: %v", err)
	}
	defer securityMasterRepo.Close()

	snapshotRepo, err := infrasnapshots.NewRepository(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf("failed to init snapshots repo: %v", err)
	}
	defer snapshotRepo.Close()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	if cfg.Auth.Password == "" {
		logger.Warn("DASHBOARD_PASSWORD is empty; dashboards are not gated")
	}

	blotterService := appblotter.NewService(tradeRepo)
	positionsService := apppositions.NewService(snapshotRepo)
	marketstateService := appmarketstate.NewService(snapshotRepo)
	monitoringService := appmonitoring.NewService(securityMasterRepo)

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	handler := infrahttp.NewHandler(
		blotterService,
		positionsService,
		marketstateService,
		monitoringService,
		redisClient,
		cacheTTL,
		cfg.Auth.Password,
	)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
