// @title           Encore Analytics API
// @version         1.0
// @description     Internal dashboards over the encoredb schema: FIFO trade blotter, positions, market state, and security-master monitoring.

// @host      localhost:8080
// @BasePath  /api/v1

package http

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	appblotter "main/internal/application/service/blotter"
	appmarketstate "main/internal/application/service/marketstate"
	appmonitoring "main/internal/application/service/monitoring"
	apppositions "main/internal/application/service/positions"
	"main/internal/domain/fifo"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	basePath = "/api/v1"

	// authHeader carries the shared dashboard password, the same simple
	// gate the team uses on every internal page.
	authHeader = "X-Dashboard-Password"
)

var (
	errMissingTicker = errors.New("ticker query param required")
	errUnauthorized  = errors.New("missing or wrong dashboard password")
)

type Handler struct {
	router      *gin.Engine
	blotter     *appblotter.Service
	positions   *apppositions.Service
	marketstate *appmarketstate.Service
	monitoring  *appmonitoring.Service
	cache       *redis.Client
	cacheTTL    time.Duration
	password    string
}

var _ http.Handler = (*Handler)(nil)

func NewHandler(
	blotter *appblotter.Service,
	positions *apppositions.Service,
	marketstate *appmarketstate.Service,
	monitoring *appmonitoring.Service,
	cache *redis.Client,
	cacheTTL time.Duration,
	password string,
) *Handler {
	router := gin.New()
	router.Use(gin.Recovery())

	h := &Handler{
		router:      router,
		blotter:     blotter,
		positions:   positions,
		marketstate: marketstate,
		monitoring:  monitoring,
		cache:       cache,
		cacheTTL:    cacheTTL,
		password:    password,
	}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := h.router.Group(basePath)
	api.Use(h.authMiddleware())
	if h.cache != nil {
		api.Use(h.cacheMiddleware())
	}
	{
		blotter := api.Group("/blotter")
		{
			blotter.GET("/tickers", h.getTickers)
			blotter.GET("/trades", h.getTrades)
			blotter.GET("/ledger", h.getLedger)
		}

		api.GET("/positions/latest", h.getLatestPositions)
		api.GET("/marketstate", h.getMarketState)

		monitoring := api.Group("/monitoring")
		{
			monitoring.GET("/issues", h.getIssues)
			monitoring.GET("/sectors", h.getSectors)
			monitoring.GET("/sectors/:id/cohorts", h.getCohorts)
			monitoring.GET("/cohorts/:id/instruments", h.getCohortInstruments)
		}
	}
}

// Blotter handlers

// getTickers lists tickers that have trades
// @Summary      List blotter tickers
// @Description  Every ticker with at least one trade in encoredb.trades
// @Tags         blotter
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Failure      500  {object}  map[string]string
// @Router       /blotter/tickers [get]
func (h *Handler) getTickers(c *gin.Context) {
	tickers, err := h.blotter.Tickers(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickers": tickers})
}

// getTrades returns the raw tape for one ticker
// @Summary      Get trade tape
// @Description  Full trade history for a ticker, sorted by (trade_date, trade_id)
// @Tags         blotter
// @Produce      json
// @Param        ticker  query     string  true  "Ticker"
// @Success      200     {array}   trading.Trade
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /blotter/trades [get]
func (h *Handler) getTrades(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		writeError(c, http.StatusBadRequest, errMissingTicker)
		return
	}
	trades, err := h.blotter.Trades(c.Request.Context(), ticker)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trades)
}

// getLedger replays the FIFO ledger for one ticker
// @Summary      Get FIFO ledger
// @Description  Replays the full trade tape through the FIFO engine and returns ledger rows plus a summary
// @Tags         blotter
// @Produce      json
// @Param        ticker  query     string  true  "Ticker"
// @Success      200     {object}  ledgerView
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      422     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /blotter/ledger [get]
func (h *Handler) getLedger(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		writeError(c, http.StatusBadRequest, errMissingTicker)
		return
	}
	ledger, err := h.blotter.Ledger(c.Request.Context(), ticker)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLedgerView(ledger))
}

// Snapshot handlers

// getLatestPositions returns the most recent positions snapshot
// @Summary      Latest positions
// @Description  Every row of the most recent positions snapshot, ordered by sector then ticker
// @Tags         positions
// @Produce      json
// @Success      200  {array}   snapshots.Position
// @Failure      500  {object}  map[string]string
// @Router       /positions/latest [get]
func (h *Handler) getLatestPositions(c *gin.Context) {
	rows, err := h.positions.Latest(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// getMarketState returns the latest canonical market state
// @Summary      Market state
// @Description  Latest canonical market-state rows ordered by index rank, with the held-position overlay
// @Tags         marketstate
// @Produce      json
// @Success      200  {array}   snapshots.MarketStateRow
// @Failure      500  {object}  map[string]string
// @Router       /marketstate [get]
func (h *Handler) getMarketState(c *gin.Context) {
	rows, err := h.marketstate.State(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Monitoring handlers

// getIssues lists security-master issues
// @Summary      Security-master issues
// @Description  Instruments in the latest positions snapshot with missing or ambiguous sector/cohort assignment
// @Tags         monitoring
// @Produce      json
// @Success      200  {array}   instruments.Issue
// @Failure      500  {object}  map[string]string
// @Router       /monitoring/issues [get]
func (h *Handler) getIssues(c *gin.Context) {
	issues, err := h.monitoring.Issues(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

// getSectors lists sectors
// @Summary      List sectors
// @Tags         monitoring
// @Produce      json
// @Success      200  {array}   instruments.Sector
// @Failure      500  {object}  map[string]string
// @Router       /monitoring/sectors [get]
func (h *Handler) getSectors(c *gin.Context) {
	sectors, err := h.monitoring.Sectors(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// getCohorts lists a sector's cohorts
// @Summary      List cohorts for a sector
// @Tags         monitoring
// @Produce      json
// @Param        id   path      int  true  "Sector ID"
// @Success      200  {array}   instruments.Cohort
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /monitoring/sectors/{id}/cohorts [get]
func (h *Handler) getCohorts(c *gin.Context) {
	sectorID, err := parseIDParam(c, "id")
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	cohorts, err := h.monitoring.Cohorts(c.Request.Context(), sectorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cohorts)
}

// getCohortInstruments lists a cohort's instruments at latest weights
// @Summary      List instruments for a cohort
// @Tags         monitoring
// @Produce      json
// @Param        id   path      int  true  "Cohort ID"
// @Success      200  {array}   instruments.CohortInstrument
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /monitoring/cohorts/{id}/instruments [get]
func (h *Handler) getCohortInstruments(c *gin.Context) {
	cohortID, err := parseIDParam(c, "id")
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	members, err := h.monitoring.CohortInstruments(c.Request.Context(), cohortID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// Middleware

func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.password == "" {
			c.Next()
			return
		}
		supplied := c.GetHeader(authHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(h.password)) != 1 {
			writeError(c, http.StatusUnauthorized, errUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := h.cacheKey(c)
		ctx := c.Request.Context()

		if cached, err := h.cache.Get(ctx, key).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			c.Abort()
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: c.Writer,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
		}
		c.Writer = recorder

		c.Next()

		if recorder.status >= 200 && recorder.status < 300 && recorder.body.Len() > 0 {
			_ = h.cache.Set(ctx, key, recorder.body.Bytes(), h.cacheTTL).Err()
		}
	}
}

type responseRecorder struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if len(data) > 0 {
		r.body.Write(data)
	}
	return r.ResponseWriter.Write(data)
}

func (h *Handler) cacheKey(c *gin.Context) string {
	return fmt.Sprintf("cache:%s:%s?%s", c.Request.Method, c.FullPath(), c.Request.URL.RawQuery)
}

// Helpers

func writeError(c *gin.Context, status int, err error) {
	if err == nil {
		status = http.StatusInternalServerError
		err = errors.New("unknown error")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// writeServiceError maps service and engine errors onto HTTP statuses: bad
// arguments are 400, an unknown ticker is 404, a tape the engine rejects is
// 422, anything else is 500.
func writeServiceError(c *gin.Context, err error) {
	var inputErr *fifo.InputError
	switch {
	case errors.Is(err, appblotter.ErrEmptyTicker) || errors.Is(err, appmonitoring.ErrInvalidID):
		writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, appblotter.ErrNoTrades):
		writeError(c, http.StatusNotFound, err)
	case errors.As(err, &inputErr):
		writeError(c, http.StatusUnprocessableEntity, err)
	default:
		writeError(c, http.StatusInternalServerError, err)
	}
}

func parseIDParam(c *gin.Context, key string) (int64, error) {
	value := c.Param(key)
	if value == "" {
		return 0, fmt.Errorf("%s path param required", key)
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return id, nil
}
