package leaguereport

import (
	"context"

	"github.com/riskibarqy/soccer-stats/internal/domain/season"
)

type Repository interface {
	ListTopLeagues(ctx context.Context, seasons season.Range) ([]LeagueGoals, error)
	ListTopOffensiveLeagues(ctx context.Context, seasons season.Range) ([]Offense, error)
	ListTopDefensiveLeagues(ctx context.Context, seasons season.Range) ([]Defense, error)
}
