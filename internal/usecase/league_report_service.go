package usecase

import (
	"context"

	"github.com/riskibarqy/soccer-stats/internal/domain/leaguereport"
	"github.com/riskibarqy/soccer-stats/internal/domain/season"
)

type LeagueReportService struct {
	repo leaguereport.Repository
}

func NewLeagueReportService(repo leaguereport.Repository) *LeagueReportService {
	return &LeagueReportService{repo: repo}
}

func (s *LeagueReportService) TopLeagues(ctx context.Context, seasons season.Range) ([]leaguereport.LeagueGoals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueReportService.TopLeagues")
	defer span.End()

	if err := validateSeasons(seasons); err != nil {
		return nil, err
	}
	items, err := s.repo.ListTopLeagues(ctx, seasons)
	if err != nil {
		return nil, spanError(span, "list top leagues", err)
	}
	return items, nil
}

func (s *LeagueReportService) TopOffensiveLeagues(ctx context.Context, seasons season.Range) ([]leaguereport.Offense, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueReportService.TopOffensiveLeagues")
	defer span.End()

	if err := validateSeasons(seasons); err != nil {
		return nil, err
	}
	items, err := s.repo.ListTopOffensiveLeagues(ctx, seasons)
	if err != nil {
		return nil, spanError(span, "list top offensive leagues", err)
	}
	return items, nil
}

func (s *LeagueReportService) TopDefensiveLeagues(ctx context.Context, seasons season.Range) ([]leaguereport.Defense, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueReportService.TopDefensiveLeagues")
	defer span.End()

	if err := validateSeasons(seasons); err != nil {
		return nil, err
	}
	items, err := s.repo.ListTopDefensiveLeagues(ctx, seasons)
	if err != nil {
		return nil, spanError(span, "list top defensive leagues", err)
	}
	return items, nil
}

func validateSeasons(seasons season.Range) error {
	return invalidInput(seasons.Validate())
}
