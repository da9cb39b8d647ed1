package instruments

import (
	"time"

	"github.com/google/uuid"
)

// Instrument corresponds to the base table encoredb.instruments. Trades,
// positions, and cohort weights reference this row by UID.
type Instrument struct {
	UID       uuid.UUID `json:"uid"`
	Ticker    string    `json:"ticker"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sector is one row of encoredb.sectors.
type Sector struct {
	SectorID   int64  `json:"sector_id"`
	SectorName string `json:"sector_name"`
}

// Cohort is one row of encoredb.cohorts; every cohort belongs to a sector.
type Cohort struct {
	CohortID   int64  `json:"cohort_id"`
	SectorID   int64  `json:"sector_id"`
	CohortName string `json:"cohort_name"`
}

// CohortInstrument is an instrument's latest effective weight inside a
// cohort, from encoredb.instrument_cohort_weights. WeightPct is fractional
// (1.0 = 100%).
type CohortInstrument struct {
	Ticker        string    `json:"ticker"`
	Name          string    `json:"name"`
	WeightPct     float64   `json:"weight_pct"`
	IsPrimary     bool      `json:"is_primary"`
	EffectiveDate time.Time `json:"effective_date"`
	Source        string    `json:"source"`
}

// Issue flags an instrument in the latest positions snapshot whose sector or
// cohort assignment is missing or ambiguous, with an explicit reason.
type Issue struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Reason string `json:"issue_reason"`
}
