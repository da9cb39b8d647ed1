package broker

import (
	"context"
	"sync"
	"testing"
	"time"

	appblotter "main/internal/application/service/blotter"
	trading "main/internal/domain/entity/trading"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	mu      sync.Mutex
	batches [][]trading.Trade
}

func (r *recordingRepo) ListTickers(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (r *recordingRepo) TapeForTicker(ctx context.Context, ticker string) ([]trading.Trade, error) {
	return nil, nil
}

func (r *recordingRepo) AddTrades(ctx context.Context, trades []trading.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch := make([]trading.Trade, len(trades))
	copy(batch, trades)
	r.batches = append(r.batches, batch)
	return nil
}

func (r *recordingRepo) Close() {}

func (r *recordingRepo) batchSizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	sizes := make([]int, 0, len(r.batches))
	for _, batch := range r.batches {
		sizes = append(sizes, len(batch))
	}
	return sizes
}

func sampleTrade(qty string) trading.Trade {
	return trading.Trade{
		Ticker:    "NVDA",
		TradeDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Quantity:  decimal.RequireFromString(qty),
		Price:     decimal.RequireFromString("100"),
	}
}

func newTestWriter(repo *recordingRepo, cfg BatchConfig) *BatchWriter {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewBatchWriter(cfg, appblotter.NewService(repo), logger)
}

func TestBatchWriterFlushesOnSize(t *testing.T) {
	repo := &recordingRepo{}
	writer := newTestWriter(repo, BatchConfig{Size: 2})
	writer.Run(context.Background())

	for _, qty := range []string{"1", "2", "3"} {
		trade := sampleTrade(qty)
		require.NoError(t, writer.AddTrade(&trade))
	}

	assert.Equal(t, []int{2}, repo.batchSizes())

	require.NoError(t, writer.Stop(context.Background()))
	assert.Equal(t, []int{2, 1}, repo.batchSizes())
}

func TestBatchWriterFlushesOnTimeout(t *testing.T) {
	repo := &recordingRepo{}
	writer := newTestWriter(repo, BatchConfig{Size: 100, Timeout: 20 * time.Millisecond})
	writer.Run(context.Background())

	trade := sampleTrade("1")
	require.NoError(t, writer.AddTrade(&trade))

	assert.Eventually(t, func() bool {
		sizes := repo.batchSizes()
		return len(sizes) == 1 && sizes[0] == 1
	}, time.Second, 5*time.Millisecond)
}

func TestBatchWriterRejectsWhenNotRunning(t *testing.T) {
	writer := newTestWriter(&recordingRepo{}, BatchConfig{Size: 10})

	trade := sampleTrade("1")
	assert.Error(t, writer.AddTrade(&trade))
	assert.Error(t, writer.AddTrade(nil))
}

func TestBatchWriterStopWithEmptyBuffer(t *testing.T) {
	repo := &recordingRepo{}
	writer := newTestWriter(repo, BatchConfig{Size: 10})
	writer.Run(context.Background())

	require.NoError(t, writer.Stop(context.Background()))
	assert.Empty(t, repo.batchSizes())
}

func TestBatchWriterRejectsAfterContextCancel(t *testing.T) {
	repo := &recordingRepo{}
	writer := newTestWriter(repo, BatchConfig{Size: 10})

	ctx, cancel := context.WithCancel(context.Background())
	writer.Run(ctx)
	cancel()

	trade := sampleTrade("1")
	assert.ErrorIs(t, writer.AddTrade(&trade), context.Canceled)
}
