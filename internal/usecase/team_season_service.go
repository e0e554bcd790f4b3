package usecase

import (
	"context"

	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
)

type TeamSeasonService struct {
	repo teamseason.Repository
}

func NewTeamSeasonService(repo teamseason.Repository) *TeamSeasonService {
	return &TeamSeasonService{repo: repo}
}

func (s *TeamSeasonService) TotalGoals(ctx context.Context, filter teamseason.GoalsFilter) ([]teamseason.Goals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSeasonService.TotalGoals")
	defer span.End()

	if err := invalidInput(filter.Validate()); err != nil {
		return nil, err
	}
	items, err := s.repo.ListGoals(ctx, filter)
	if err != nil {
		return nil, spanError(span, "list team goals", err)
	}
	return items, nil
}

func (s *TeamSeasonService) WinLossDraw(ctx context.Context, filter teamseason.RecordFilter) ([]teamseason.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSeasonService.WinLossDraw")
	defer span.End()

	if err := invalidInput(filter.Validate()); err != nil {
		return nil, err
	}
	items, err := s.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, spanError(span, "list team records", err)
	}
	return items, nil
}

// SeasonPoints pages only when a page number is given; the page size
// defaults to teamseason.DefaultPageSize.
func (s *TeamSeasonService) SeasonPoints(ctx context.Context, filter teamseason.PointsFilter) ([]teamseason.Points, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSeasonService.SeasonPoints")
	defer span.End()

	if filter.Page.Enabled() && filter.Page.Size == 0 {
		filter.Page.Size = teamseason.DefaultPageSize
	}
	if err := invalidInput(filter.Validate()); err != nil {
		return nil, err
	}
	items, err := s.repo.ListPoints(ctx, filter)
	if err != nil {
		return nil, spanError(span, "list team points", err)
	}
	return items, nil
}

func (s *TeamSeasonService) Efficiency(ctx context.Context, filter teamseason.EfficiencyFilter) ([]teamseason.Efficiency, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSeasonService.Efficiency")
	defer span.End()

	if err := invalidInput(filter.Validate()); err != nil {
		return nil, err
	}
	items, err := s.repo.ListEfficiency(ctx, filter)
	if err != nil {
		return nil, spanError(span, "list team efficiency", err)
	}
	return items, nil
}

