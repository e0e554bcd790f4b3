package usecase

import (
	"context"

	"github.com/riskibarqy/soccer-stats/internal/domain/roster"
)

type RosterService struct {
	repo roster.Repository
}

func NewRosterService(repo roster.Repository) *RosterService {
	return &RosterService{repo: repo}
}

func (s *RosterService) TeamRoster(ctx context.Context, filter roster.Filter) ([]roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.TeamRoster")
	defer span.End()

	if err := validateSeasons(filter.Seasons); err != nil {
		return nil, err
	}
	items, err := s.repo.ListRosters(ctx, filter)
	if err != nil {
		return nil, spanError(span, "list team rosters", err)
	}
	return items, nil
}

// MaterializedRoster has the TeamRoster contract but reads the precomputed
// view, which is only as fresh as its last refresh.
func (s *RosterService) MaterializedRoster(ctx context.Context, filter roster.Filter) ([]roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.MaterializedRoster")
	defer span.End()

	if err := validateSeasons(filter.Seasons); err != nil {
		return nil, err
	}
	items, err := s.repo.ListMaterializedRosters(ctx, filter)
	if err != nil {
		return nil, spanError(span, "list materialized rosters", err)
	}
	return items, nil
}

func (s *RosterService) Refresh(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Refresh")
	defer span.End()

	if err := s.repo.RefreshMaterializedRosters(ctx); err != nil {
		return spanError(span, "refresh materialized rosters", err)
	}
	return nil
}
