package playerreport

import "context"

type Repository interface {
	ListTopScorers(ctx context.Context) ([]TopScorer, error)
	ListMostInfluential(ctx context.Context, limit int) ([]InfluentialPlayer, error)
	ListClutchPlayers(ctx context.Context, limit int) ([]ClutchPlayer, error)
	ListSeasonPerformance(ctx context.Context, query SeasonPerformanceQuery) ([]SeasonPerformance, error)
	CountShots(ctx context.Context) (int64, error)
}
