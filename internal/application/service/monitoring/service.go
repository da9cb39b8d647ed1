package monitoring

import (
	"context"
	"errors"

	instruments "main/internal/domain/entity/instruments"
	interfaces "main/internal/domain/interfaces"
)

var ErrInvalidID = errors.New("id must be positive")

type Service struct {
	repo interfaces.SecurityMasterRepository
}

func NewService(repo interfaces.SecurityMasterRepository) *Service {
	return &Service{repo: repo}
}

// Issues returns instruments in the latest positions snapshot whose sector
// or cohort assignment needs attention.
func (s *Service) Issues(ctx context.Context) ([]instruments.Issue, error) {
	return s.repo.ListIssues(ctx)
}

func (s *Service) Sectors(ctx context.Context) ([]instruments.Sector, error) {
	return s.repo.ListSectors(ctx)
}

func (s *Service) Cohorts(ctx context.Context, sectorID int64) ([]instruments.Cohort, error) {
	if sectorID <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.ListCohorts(ctx, sectorID)
}

func (s *Service) CohortInstruments(ctx context.Context, cohortID int64) ([]instruments.CohortInstrument, error) {
	if cohortID <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.ListCohortInstruments(ctx, cohortID)
}

func (s *Service) Close() {
	s.repo.Close()
}
