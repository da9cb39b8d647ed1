package positions

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

// Latest returns every row of the most recent positions snapshot. An empty
// result means no snapshot has been written yet, which the presentation
// layer reports as-is.
func (s *Service) Latest(ctx context.Context) ([]snapshots.Position, error) {
	return s.repo.LatestPositions(ctx)
}

func (s *Service) Close() {
	s.repo.Close()
}
