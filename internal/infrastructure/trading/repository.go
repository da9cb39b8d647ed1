package trading

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "main/internal/domain/entity/trading"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() {
	if r == nil || r.pool == nil {
		return
	}
	r.pool.Close()
}

func (r *Repository) ListTickers(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT i.ticker
		FROM encoredb.trades t
		JOIN encoredb.instruments i ON i.instrument_uid = t.instrument_uid
		ORDER BY i.ticker`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickers []string
	for rows.Next() {
		var ticker string
		if err := rows.Scan(&ticker); err != nil {
			return nil, err
		}
		tickers = append(tickers, ticker)
	}
	return tickers, rows.Err()
}

// TapeForTicker returns one instrument's full trade history sorted ascending
// by (trade_date, trade_id). The ledger engine relies on this ordering.
func (r *Repository) TapeForTicker(ctx context.Context, ticker string) ([]domain.Trade, error) {
	const query = `
		SELECT
			t.trade_id,
			t.instrument_uid,
			i.ticker,
			t.trade_date,
			t.quantity::text,
			t.price::text,
			COALESCE(t.gross_commissions, 0)::text,
			COALESCE(t.gross_fees, 0)::text,
			COALESCE(t.gross_taxes, 0)::text
		FROM encoredb.trades t
		JOIN encoredb.instruments i ON i.instrument_uid = t.instrument_uid
		WHERE i.ticker = $1
		ORDER BY t.trade_date, t.trade_id`
	rows, err := r.pool.Query(ctx, query, ticker)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trades []domain.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}
	return trades, rows.Err()
}

// AddTrades bulk-inserts a batch via COPY. trade_id is assigned by the
// database sequence, which is what makes it a valid tie-breaker later.
func (r *Repository) AddTrades(ctx context.Context, trades []domain.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	rows := make([][]interface{}, 0, len(trades))
	for i := range trades {
		if trades[i].InstrumentUID == uuid.Nil {
			return errors.New("trade is missing instrument uid")
		}
		rows = append(rows, []interface{}{
			trades[i].InstrumentUID,
			trades[i].TradeDate,
			trades[i].Quantity.String(),
			trades[i].Price.String(),
			trades[i].GrossCommissions.String(),
			trades[i].GrossFees.String(),
			trades[i].GrossTaxes.String(),
		})
	}
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"encoredb", "trades"},
		[]string{"instrument_uid", "trade_date", "quantity", "price", "gross_commissions", "gross_fees", "gross_taxes"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func scanTrade(row pgx.Row) (domain.Trade, error) {
	var (
		trade       domain.Trade
		tradeDate   time.Time
		quantity    string
		price       string
		commissions string
		fees        string
		taxes       string
	)
	err := row.Scan(
		&trade.TradeID,
		&trade.InstrumentUID,
		&trade.Ticker,
		&tradeDate,
		&quantity,
		&price,
		&commissions,
		&fees,
		&taxes,
	)
	if err != nil {
		return domain.Trade{}, err
	}
	trade.TradeDate = tradeDate

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&trade.Quantity, quantity},
		{&trade.Price, price},
		{&trade.GrossCommissions, commissions},
		{&trade.GrossFees, fees},
		{&trade.GrossTaxes, taxes},
	} {
		value, err := decimal.NewFromString(field.src)
		if err != nil {
			return domain.Trade{}, fmt.Errorf("parse numeric column: %w", err)
		}
		*field.dst = value
	}
	return trade, nil
}
