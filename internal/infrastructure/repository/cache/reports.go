package cache

import (
	"context"

	"github.com/riskibarqy/soccer-stats/internal/domain/leaguereport"
	"github.com/riskibarqy/soccer-stats/internal/domain/playerreport"
	"github.com/riskibarqy/soccer-stats/internal/domain/roster"
	"github.com/riskibarqy/soccer-stats/internal/domain/season"
	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
	basecache "github.com/riskibarqy/soccer-stats/internal/platform/cache"
)

// Report decorators serve repeated report reads from the store. Results are
// copied on the way out so callers cannot mutate cached slices.

type PlayerReportRepository struct {
	next  playerreport.Repository
	cache *basecache.Store
}

func NewPlayerReportRepository(next playerreport.Repository, cache *basecache.Store) *PlayerReportRepository {
	return &PlayerReportRepository{next: next, cache: cache}
}

func (r *PlayerReportRepository) ListTopScorers(ctx context.Context) ([]playerreport.TopScorer, error) {
	return loadSlice(ctx, r.cache, "player:top_scorers", r.next.ListTopScorers)
}

func (r *PlayerReportRepository) ListMostInfluential(ctx context.Context, limit int) ([]playerreport.InfluentialPlayer, error) {
	key := newKey("player:most_influential").num(limit).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]playerreport.InfluentialPlayer, error) {
		return r.next.ListMostInfluential(ctx, limit)
	})
}

func (r *PlayerReportRepository) ListClutchPlayers(ctx context.Context, limit int) ([]playerreport.ClutchPlayer, error) {
	key := newKey("player:clutch").num(limit).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]playerreport.ClutchPlayer, error) {
		return r.next.ListClutchPlayers(ctx, limit)
	})
}

func (r *PlayerReportRepository) ListSeasonPerformance(ctx context.Context, query playerreport.SeasonPerformanceQuery) ([]playerreport.SeasonPerformance, error) {
	// Names match exactly, so the key keeps the original case.
	key := newKey("player:season_performance").optNum(query.Season).String() + ":" + query.Name
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]playerreport.SeasonPerformance, error) {
		return r.next.ListSeasonPerformance(ctx, query)
	})
}

// CountShots backs the health probe and always reaches the database.
func (r *PlayerReportRepository) CountShots(ctx context.Context) (int64, error) {
	return r.next.CountShots(ctx)
}

type LeagueReportRepository struct {
	next  leaguereport.Repository
	cache *basecache.Store
}

func NewLeagueReportRepository(next leaguereport.Repository, cache *basecache.Store) *LeagueReportRepository {
	return &LeagueReportRepository{next: next, cache: cache}
}

func (r *LeagueReportRepository) ListTopLeagues(ctx context.Context, seasons season.Range) ([]leaguereport.LeagueGoals, error) {
	key := newKey("league:top").seasons(seasons).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]leaguereport.LeagueGoals, error) {
		return r.next.ListTopLeagues(ctx, seasons)
	})
}

func (r *LeagueReportRepository) ListTopOffensiveLeagues(ctx context.Context, seasons season.Range) ([]leaguereport.Offense, error) {
	key := newKey("league:offense").seasons(seasons).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]leaguereport.Offense, error) {
		return r.next.ListTopOffensiveLeagues(ctx, seasons)
	})
}

func (r *LeagueReportRepository) ListTopDefensiveLeagues(ctx context.Context, seasons season.Range) ([]leaguereport.Defense, error) {
	key := newKey("league:defense").seasons(seasons).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]leaguereport.Defense, error) {
		return r.next.ListTopDefensiveLeagues(ctx, seasons)
	})
}

type RosterRepository struct {
	next  roster.Repository
	cache *basecache.Store
}

func NewRosterRepository(next roster.Repository, cache *basecache.Store) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) ListRosters(ctx context.Context, filter roster.Filter) ([]roster.Entry, error) {
	key := newKey("roster:live").seasons(filter.Seasons).str(filter.TeamName).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]roster.Entry, error) {
		return r.next.ListRosters(ctx, filter)
	})
}

func (r *RosterRepository) ListMaterializedRosters(ctx context.Context, filter roster.Filter) ([]roster.Entry, error) {
	key := newKey("roster:view").seasons(filter.Seasons).str(filter.TeamName).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]roster.Entry, error) {
		return r.next.ListMaterializedRosters(ctx, filter)
	})
}

func (r *RosterRepository) RefreshMaterializedRosters(ctx context.Context) error {
	return r.next.RefreshMaterializedRosters(ctx)
}

type TeamSeasonRepository struct {
	next  teamseason.Repository
	cache *basecache.Store
}

func NewTeamSeasonRepository(next teamseason.Repository, cache *basecache.Store) *TeamSeasonRepository {
	return &TeamSeasonRepository{next: next, cache: cache}
}

func (r *TeamSeasonRepository) ListGoals(ctx context.Context, filter teamseason.GoalsFilter) ([]teamseason.Goals, error) {
	key := newKey("team:goals").str(filter.TeamName).bounds(filter.GoalsScored).bounds(filter.GoalsConceded).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]teamseason.Goals, error) {
		return r.next.ListGoals(ctx, filter)
	})
}

func (r *TeamSeasonRepository) ListRecords(ctx context.Context, filter teamseason.RecordFilter) ([]teamseason.Record, error) {
	key := newKey("team:records").str(filter.TeamName).bounds(filter.Wins).bounds(filter.Losses).bounds(filter.Draws).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]teamseason.Record, error) {
		return r.next.ListRecords(ctx, filter)
	})
}

func (r *TeamSeasonRepository) ListPoints(ctx context.Context, filter teamseason.PointsFilter) ([]teamseason.Points, error) {
	key := newKey("team:points").str(filter.TeamName).optNum(filter.Season).bounds(filter.Points).
		num(filter.Page.Number).num(filter.Page.Size).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]teamseason.Points, error) {
		return r.next.ListPoints(ctx, filter)
	})
}

func (r *TeamSeasonRepository) ListEfficiency(ctx context.Context, filter teamseason.EfficiencyFilter) ([]teamseason.Efficiency, error) {
	key := newKey("team:efficiency").str(filter.TeamName).bounds(filter.GoalsPerShot).bounds(filter.GoalsPerGame).String()
	return loadSlice(ctx, r.cache, key, func(ctx context.Context) ([]teamseason.Efficiency, error) {
		return r.next.ListEfficiency(ctx, filter)
	})
}

func loadSlice[T any](ctx context.Context, store *basecache.Store, key string, loader func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, store, key, loader)
	if err != nil {
		return nil, err
	}
	return append(make([]T, 0, len(items)), items...), nil
}
