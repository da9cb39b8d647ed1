package blotter

import (
	"context"
	"errors"
	"testing"
	"time"

	trading "main/internal/domain/entity/trading"
	"main/internal/domain/fifo"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTradeRepo struct {
	tickers    []string
	tapes      map[string][]trading.Trade
	added      []trading.Trade
	tapeErr    error
	lastTicker string
}

func (f *fakeTradeRepo) ListTickers(ctx context.Context) ([]string, error) {
	return f.tickers, nil
}

func (f *fakeTradeRepo) TapeForTicker(ctx context.Context, ticker string) ([]trading.Trade, error) {
	f.lastTicker = ticker
	if f.tapeErr != nil {
		return nil, f.tapeErr
	}
	return f.tapes[ticker], nil
}

func (f *fakeTradeRepo) AddTrades(ctx context.Context, trades []trading.Trade) error {
	f.added = append(f.added, trades...)
	return nil
}

func (f *fakeTradeRepo) Close() {}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func testTrade(id int64, d int, qty, price string) trading.Trade {
	return trading.Trade{
		TradeID:   id,
		Ticker:    "NVDA",
		TradeDate: day(d),
		Quantity:  decimal.RequireFromString(qty),
		Price:     decimal.RequireFromString(price),
	}
}

func TestLedgerReplaysTape(t *testing.T) {
	repo := &fakeTradeRepo{
		tapes: map[string][]trading.Trade{
			"NVDA": {
				testTrade(1, 1, "100", "10"),
				testTrade(2, 2, "-40", "15"),
			},
		},
	}
	service := NewService(repo)

	ledger, err := service.Ledger(context.Background(), "NVDA")
	require.NoError(t, err)

	assert.Equal(t, "NVDA", ledger.Ticker)
	require.Len(t, ledger.Rows, 2)
	assert.Equal(t, fifo.SideOpenLong, ledger.Rows[0].Side)
	assert.Equal(t, fifo.SideCloseLong, ledger.Rows[1].Side)
	assert.True(t, ledger.Summary.RealizedPnL.Equal(decimal.RequireFromString("200")))
	assert.True(t, ledger.Summary.FinalPosition.Equal(decimal.RequireFromString("60")))
}

func TestLedgerNormalizesTicker(t *testing.T) {
	repo := &fakeTradeRepo{
		tapes: map[string][]trading.Trade{
			"NVDA": {testTrade(1, 1, "10", "10")},
		},
	}
	service := NewService(repo)

	ledger, err := service.Ledger(context.Background(), "  nvda ")
	require.NoError(t, err)
	assert.Equal(t, "NVDA", ledger.Ticker)
	assert.Equal(t, "NVDA", repo.lastTicker)
}

func TestLedgerEmptyTicker(t *testing.T) {
	service := NewService(&fakeTradeRepo{})

	_, err := service.Ledger(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTicker)

	_, err = service.Trades(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyTicker)
}

func TestLedgerUnknownTicker(t *testing.T) {
	service := NewService(&fakeTradeRepo{tapes: map[string][]trading.Trade{}})

	_, err := service.Ledger(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, ErrNoTrades)
}

func TestLedgerWrapsEngineErrors(t *testing.T) {
	repo := &fakeTradeRepo{
		tapes: map[string][]trading.Trade{
			"NVDA": {testTrade(1, 1, "0", "10")},
		},
	}
	service := NewService(repo)

	_, err := service.Ledger(context.Background(), "NVDA")
	require.Error(t, err)

	var inputErr *fifo.InputError
	assert.ErrorAs(t, err, &inputErr)
	assert.Contains(t, err.Error(), "build ledger for NVDA")
}

func TestLedgerPropagatesRepoErrors(t *testing.T) {
	repoErr := errors.New("connection refused")
	service := NewService(&fakeTradeRepo{tapeErr: repoErr})

	_, err := service.Ledger(context.Background(), "NVDA")
	assert.ErrorIs(t, err, repoErr)
}

func TestAddTradesSkipsEmptyBatch(t *testing.T) {
	repo := &fakeTradeRepo{}
	service := NewService(repo)

	require.NoError(t, service.AddTrades(context.Background(), nil))
	assert.Empty(t, repo.added)

	batch := []trading.Trade{testTrade(1, 1, "5", "100")}
	require.NoError(t, service.AddTrades(context.Background(), batch))
	assert.Len(t, repo.added, 1)
}
