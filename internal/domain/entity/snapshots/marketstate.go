package snapshots

import "time"

// MarketStateRow is one row of the canonical market-state view
// (encoredb.v_canonical_market_state_enriched) for a snapshot date, ordered
// by index rank. Percent-change and analyst fields are display metrics and
// stay float64; decimal arithmetic is reserved for the ledger engine.
type MarketStateRow struct {
	SnapshotDate        time.Time  `json:"snapshot_date"`
	Ticker              string     `json:"ticker"`
	SectorName          string     `json:"sector_name"`
	CohortName          string     `json:"cohort_name"`
	RoleBucket          string     `json:"role_bucket"`
	IndexRank           int        `json:"index_rank"`
	IndexWeightPct      float64    `json:"index_weight_pct"`
	CumulativeWeightPct float64    `json:"cumulative_weight_pct"`
	LastPrice           float64    `json:"last_price"`
	PctChange1D         *float64   `json:"pct_change_1d"`
	PctChange5D         *float64   `json:"pct_change_5d"`
	PctChange1M         *float64   `json:"pct_change_1m"`
	PctChangeYTD        *float64   `json:"pct_change_ytd"`
	PctFrom52WHigh      *float64   `json:"pct_from_52w_high"`
	BestTargetPrice     *float64   `json:"best_target_price"`
	PctToBestTarget     *float64   `json:"pct_to_best_target"`
	AnalystCount        *int       `json:"analyst_count"`
	BestAnalystRating   *float64   `json:"best_analyst_rating"`
	NextEarningsDate    *time.Time `json:"next_earnings_date"`
	DaysToEarnings      *int       `json:"days_to_earnings"`

	// HeldQuantity is the net position overlay from the latest positions
	// snapshot; zero when the desk holds nothing in the name.
	HeldQuantity float64 `json:"held_quantity"`
}
