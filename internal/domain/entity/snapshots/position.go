package snapshots

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Position is one row of the latest encoredb.positions_snapshot. Snapshots
// are written every thirty minutes by an upstream job; this service only
// reads the most recent one.
type Position struct {
	SnapshotTS    time.Time       `json:"snapshot_ts"`
	InstrumentUID uuid.UUID       `json:"instrument_uid"`
	Ticker        string          `json:"ticker"`
	Sector        string          `json:"sector"`
	Quantity      decimal.Decimal `json:"quantity"`
	AvgCost       decimal.Decimal `json:"avg_cost"`
	LastPrice     decimal.Decimal `json:"last_price"`
	MarketValue   decimal.Decimal `json:"market_value"`
}

// PositionTotal is the net held quantity per ticker over the latest
// snapshot, used as the held-position overlay on market-state views.
type PositionTotal struct {
	Ticker   string          `json:"ticker"`
	Quantity decimal.Decimal `json:"notional_quantity"`
}
