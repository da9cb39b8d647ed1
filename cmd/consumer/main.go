package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	appblotter "main/internal/application/service/blotter"
	"main/internal/config"
	"main/internal/infrastructure/broker"
	infratrading "main/internal/infrastructure/trading"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}
	if cfg.RabbitMQ.URL == "" {
		logger.Fatal("RABBITMQ_URL is required")
	}

	tradeRepo, err := infratrading.NewRepository(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf("connect postgres: %v", err)
	}
	defer tradeRepo.Close()

	service := appblotter.NewService(tradeRepo)

	consumer, err := broker.NewConsumer(cfg.RabbitMQ, service, logger)
	if err != nil {
		logger.Fatalf("create consumer: %v", err)
	}
	if err := consumer.Start(ctx); err != nil {
		logger.Fatalf("start consumer: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"exchange":   cfg.RabbitMQ.TradesExchange,
		"batch_size": cfg.RabbitMQ.BatchSize,
	}).Info("trade consumer started")

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := consumer.Close(shutdownCtx); err != nil {
		logger.Errorf("close consumer: %v", err)
	}
	logger.Info("trade consumer stopped")
}
