package marketstate

import (
	"context"

	snapshots "main/internal/domain/entity/snapshots"
	interfaces "main/internal/domain/interfaces"
)

type Service struct {
	repo interfaces.SnapshotRepository
}

func NewService(repo interfaces.SnapshotRepository) *Service {
	return &Service{repo: repo}
}

// State returns the latest canonical market-state rows with the net held
// position from the latest positions snapshot merged in by ticker.
func (s *Service) State(ctx context.Context) ([]snapshots.MarketStateRow, error) {
	rows, err := s.repo.LatestMarketState(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	totals, err := s.repo.PositionTotals(ctx)
	if err != nil {
		return nil, err
	}
	held := make(map[string]float64, len(totals))
	for _, total := range totals {
		held[total.Ticker] = total.Quantity.InexactFloat64()
	}
	for i := range rows {
		rows[i].HeldQuantity = held[rows[i].Ticker]
	}
	return rows, nil
}

func (s *Service) Close() {
	s.repo.Close()
}
