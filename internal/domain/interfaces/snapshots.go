package interfaces

import (
	"context"

	snapshots "main/internal/domain/entity/snapshots"
)

// SnapshotRepository reads the periodic position and market-state snapshots
// written by upstream jobs.
type SnapshotRepository interface {
	// LatestPositions returns every row of the most recent positions
	// snapshot, ordered by sector then ticker.
	LatestPositions(ctx context.Context) ([]snapshots.Position, error)
	// PositionTotals returns net held quantity per ticker over the latest
	// positions snapshot.
	PositionTotals(ctx context.Context) ([]snapshots.PositionTotal, error)
	// LatestMarketState returns the canonical market-state rows for the most
	// recent snapshot date, ordered by index rank.
	LatestMarketState(ctx context.Context) ([]snapshots.MarketStateRow, error)

	Close()
}
