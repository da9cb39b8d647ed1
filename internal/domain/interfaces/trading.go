package interfaces

import (
	"context"

	trading "main/internal/domain/entity/trading"
)

// TradeRepository provides the trade tape stored in encoredb.trades.
type TradeRepository interface {
	// ListTickers returns every ticker with at least one trade, sorted.
	ListTickers(ctx context.Context) ([]string, error)
	// TapeForTicker returns the full trade tape for one ticker, sorted
	// ascending by (trade_date, trade_id).
	TapeForTicker(ctx context.Context, ticker string) ([]trading.Trade, error)
	// AddTrades bulk-inserts a batch of trades from the ingestion pipeline.
	AddTrades(ctx context.Context, trades []trading.Trade) error

	Close()
}
