package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/soccer-stats/internal/domain/playerreport"
)

type PlayerReportService struct {
	repo playerreport.Repository
}

func NewPlayerReportService(repo playerreport.Repository) *PlayerReportService {
	return &PlayerReportService{repo: repo}
}

func (s *PlayerReportService) TopScorers(ctx context.Context) ([]playerreport.TopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerReportService.TopScorers")
	defer span.End()

	items, err := s.repo.ListTopScorers(ctx)
	if err != nil {
		return nil, spanError(span, "list top scorers", err)
	}
	return items, nil
}

// MostInfluential uses the default limit when limit is zero.
func (s *PlayerReportService) MostInfluential(ctx context.Context, limit int) ([]playerreport.InfluentialPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerReportService.MostInfluential")
	defer span.End()

	limit, err := resolveLimit(limit, playerreport.DefaultInfluentialLimit, playerreport.MaxInfluentialLimit)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListMostInfluential(ctx, limit)
	if err != nil {
		return nil, spanError(span, "list most influential players", err)
	}
	return items, nil
}

func (s *PlayerReportService) ClutchPlayers(ctx context.Context, limit int) ([]playerreport.ClutchPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerReportService.ClutchPlayers")
	defer span.End()

	limit, err := resolveLimit(limit, playerreport.DefaultClutchLimit, playerreport.MaxClutchLimit)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListClutchPlayers(ctx, limit)
	if err != nil {
		return nil, spanError(span, "list clutch players", err)
	}
	return items, nil
}

func (s *PlayerReportService) SeasonPerformance(ctx context.Context, name string, season *int) ([]playerreport.SeasonPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerReportService.SeasonPerformance")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInputf("name is required")
	}

	items, err := s.repo.ListSeasonPerformance(ctx, playerreport.SeasonPerformanceQuery{Name: name, Season: season})
	if err != nil {
		return nil, spanError(span, "list season performance", err)
	}
	return items, nil
}

func (s *PlayerReportService) ShotCount(ctx context.Context) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerReportService.ShotCount")
	defer span.End()

	count, err := s.repo.CountShots(ctx)
	if err != nil {
		return 0, spanError(span, "count shots", err)
	}
	return count, nil
}

func resolveLimit(limit, def, max int) (int, error) {
	switch {
	case limit == 0:
		return def, nil
	case limit < 1 || limit > max:
		return 0, invalidInputf("limit must be between 1 and %d", max)
	default:
		return limit, nil
	}
}
