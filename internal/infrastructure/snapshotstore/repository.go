package snapshotstore

import (
	"context"
	"fmt"

	domain "main/internal/domain/entity/snapshots"

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

func (r *Repository) LatestPositions(ctx context.Context) ([]domain.Position, error) {
	const query = `
		SELECT
			snapshot_ts,
			instrument_uid,
			ticker,
			sector,
			quantity::text,
			avg_cost::text,
			last_price::text,
			market_value::text
		FROM encoredb.positions_snapshot
		WHERE snapshot_ts = (
			SELECT MAX(snapshot_ts)
			FROM encoredb.positions_snapshot
		)
		ORDER BY sector, ticker`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		position, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}
	return positions, rows.Err()
}

func (r *Repository) PositionTotals(ctx context.Context) ([]domain.PositionTotal, error) {
	const query = `
		SELECT ticker, SUM(quantity)::text AS notional_quantity
		FROM encoredb.positions_snapshot
		WHERE snapshot_ts = (
			SELECT MAX(snapshot_ts)
			FROM encoredb.positions_snapshot
		)
		GROUP BY ticker`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.PositionTotal
	for rows.Next() {
		var (
			total    domain.PositionTotal
			quantity string
		)
		if err := rows.Scan(&total.Ticker, &quantity); err != nil {
			return nil, err
		}
		value, err := decimal.NewFromString(quantity)
		if err != nil {
			return nil, fmt.Errorf("parse notional quantity: %w", err)
		}
		total.Quantity = value
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func (r *Repository) LatestMarketState(ctx context.Context) ([]domain.MarketStateRow, error) {
	const query = `
		SELECT
			snapshot_date,
			ticker,
			sector_name,
			cohort_name,
			role_bucket,
			index_rank,
			index_weight_pct,
			cumulative_weight_pct,
			last_price,
			pct_change_1d,
			pct_change_5d,
			pct_change_1m,
			pct_change_ytd,
			pct_from_52w_high,
			best_target_price,
			pct_to_best_target,
			analyst_count,
			best_analyst_rating,
			next_earnings_date,
			days_to_earnings
		FROM encoredb.v_canonical_market_state_enriched
		WHERE snapshot_date = (
			SELECT MAX(snapshot_date)
			FROM encoredb.v_canonical_market_state_enriched
		)
		ORDER BY index_rank`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var state []domain.MarketStateRow
	for rows.Next() {
		row, err := scanMarketState(rows)
		if err != nil {
			return nil, err
		}
		state = append(state, row)
	}
	return state, rows.Err()
}

func scanPosition(row pgx.Row) (domain.Position, error) {
	var (
		position    domain.Position
		quantity    string
		avgCost     string
		lastPrice   string
		marketValue string
	)
	err := row.Scan(
		&position.SnapshotTS,
		&position.InstrumentUID,
		&position.Ticker,
		&position.Sector,
		&quantity,
		&avgCost,
		&lastPrice,
		&marketValue,
	)
	if err != nil {
		return domain.Position{}, err
	}

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&position.Quantity, quantity},
		{&position.AvgCost, avgCost},
		{&position.LastPrice, lastPrice},
		{&position.MarketValue, marketValue},
	} {
		value, err := decimal.NewFromString(field.src)
		if err != nil {
			return domain.Position{}, fmt.Errorf("parse numeric column: %w", err)
		}
		*field.dst = value
	}
	return position, nil
}

func scanMarketState(row pgx.Row) (domain.MarketStateRow, error) {
	var state domain.MarketStateRow
	err := row.Scan(
		&state.SnapshotDate,
		&state.Ticker,
		&state.SectorName,
		&state.CohortName,
		&state.RoleBucket,
		&state.IndexRank,
		&state.IndexWeightPct,
		&state.CumulativeWeightPct,
		&state.LastPrice,
		&state.PctChange1D,
		&state.PctChange5D,
		&state.PctChange1M,
		&state.PctChangeYTD,
		&state.PctFrom52WHigh,
		&state.BestTargetPrice,
		&state.PctToBestTarget,
		&state.AnalystCount,
		&state.BestAnalystRating,
		&state.NextEarningsDate,
		&state.DaysToEarnings,
	)
	if err != nil {
		return domain.MarketStateRow{}, err
	}
	return state, nil
}
