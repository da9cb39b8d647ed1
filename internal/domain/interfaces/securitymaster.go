package interfaces

import (
	"context"

	instruments "main/internal/domain/entity/instruments"
)

// SecurityMasterRepository serves the sector / cohort / instrument mapping
// tables and the monitoring queries over them.
type SecurityMasterRepository interface {
	ListSectors(ctx context.Context) ([]instruments.Sector, error)
	ListCohorts(ctx context.Context, sectorID int64) ([]instruments.Cohort, error)
	// ListCohortInstruments returns the instruments assigned to a cohort at
	// their latest effective weight, primaries first.
	ListCohortInstruments(ctx context.Context, cohortID int64) ([]instruments.CohortInstrument, error)
	// ListIssues returns instruments in the latest positions snapshot with
	// missing or ambiguous sector/cohort assignment.
	ListIssues(ctx context.Context) ([]instruments.Issue, error)

	Close()
}
