package postgres

import (
	"context"
	"fmt"

	"github.com/riskibarqy/soccer-stats/internal/domain/leaguereport"
	"github.com/riskibarqy/soccer-stats/internal/domain/season"
	qb "github.com/riskibarqy/soccer-stats/internal/platform/querybuilder"
)

type LeagueReportRepository struct {
	db Querier
}

func NewLeagueReportRepository(db Querier) *LeagueReportRepository {
	return &LeagueReportRepository{db: db}
}

func (r *LeagueReportRepository) ListTopLeagues(ctx context.Context, seasons season.Range) ([]leaguereport.LeagueGoals, error) {
	query, args, err := qb.Select(
		"l.name AS league_name",
		"AVG(g.home_goals + g.away_goals)::float8 AS avg_total_goals",
		"AVG(g.home_goals - g.away_goals)::float8 AS avg_goal_difference",
	).From("games g JOIN leagues l ON l.league_id = g.league_id").
		Where(qb.Between("g.season", seasons.Start, seasons.End)).
		GroupBy("l.league_id", "l.name").
		OrderBy("avg_total_goals DESC", "avg_goal_difference ASC", "l.name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top leagues query: %w", err)
	}

	var rows []leagueGoalsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top leagues seasons=%s: %w", seasons, err)
	}

	out := make([]leaguereport.LeagueGoals, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaguereport.LeagueGoals{
			LeagueName:        row.LeagueName,
			AvgTotalGoals:     nullFloat(row.AvgTotalGoals),
			AvgGoalDifference: nullFloat(row.AvgGoalDifference),
		})
	}
	return out, nil
}

func (r *LeagueReportRepository) ListTopOffensiveLeagues(ctx context.Context, seasons season.Range) ([]leaguereport.Offense, error) {
	query, args, err := qb.Select(
		"l.name AS league_name",
		"AVG(ts.goals)::float8 AS avg_goals",
		"AVG(ts.x_goals)::float8 AS avg_x_goals",
		"AVG(ts.shots)::float8 AS avg_shots",
		"AVG(ts.shots_on_target)::float8 AS avg_shots_on_target",
		"AVG(ts.deep)::float8 AS avg_deep_passes",
		"AVG(ts.corners)::float8 AS avg_corners",
	).From("teamstats ts JOIN games g ON g.game_id = ts.game_id JOIN leagues l ON l.league_id = g.league_id").
		Where(qb.Between("ts.season", seasons.Start, seasons.End)).
		GroupBy("l.league_id", "l.name").
		OrderBy("avg_goals DESC", "avg_shots_on_target DESC", "avg_corners DESC", "l.name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top offensive leagues query: %w", err)
	}

	var rows []leagueOffenseRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top offensive leagues seasons=%s: %w", seasons, err)
	}

	out := make([]leaguereport.Offense, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaguereport.Offense{
			LeagueName:       row.LeagueName,
			AvgGoals:         nullFloat(row.AvgGoals),
			AvgExpectedGoals: nullFloat(row.AvgExpectedGoals),
			AvgShots:         nullFloat(row.AvgShots),
			AvgShotsOnTarget: nullFloat(row.AvgShotsOnTarget),
			AvgDeepPasses:    nullFloat(row.AvgDeepPasses),
			AvgCorners:       nullFloat(row.AvgCorners),
		})
	}
	return out, nil
}

// ListTopDefensiveLeagues pairs each teamstats row with the opponent's row
// for the same game; conceded goals and faced shots come from the opponent.
func (r *LeagueReportRepository) ListTopDefensiveLeagues(ctx context.Context, seasons season.Range) ([]leaguereport.Defense, error) {
	query, args, err := qb.Select(
		"l.name AS league_name",
		"AVG(opp.goals)::float8 AS avg_goals_conceded",
		"AVG(opp.shots)::float8 AS avg_shots_faced",
		"AVG(ts.ppda)::float8 AS avg_ppda",
	).From("teamstats ts " +
		"JOIN teamstats opp ON opp.game_id = ts.game_id AND opp.team_id <> ts.team_id " +
		"JOIN games g ON g.game_id = ts.game_id " +
		"JOIN leagues l ON l.league_id = g.league_id").
		Where(qb.Between("ts.season", seasons.Start, seasons.End)).
		GroupBy("l.league_id", "l.name").
		OrderBy("avg_ppda ASC NULLS LAST", "avg_goals_conceded ASC", "avg_shots_faced ASC", "l.name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top defensive leagues query: %w", err)
	}

	var rows []leagueDefenseRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top defensive leagues seasons=%s: %w", seasons, err)
	}

	out := make([]leaguereport.Defense, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaguereport.Defense{
			LeagueName:       row.LeagueName,
			AvgGoalsConceded: nullFloat(row.AvgGoalsConceded),
			AvgShotsFaced:    nullFloat(row.AvgShotsFaced),
			AvgPPDA:          nullFloat(row.AvgPPDA),
		})
	}
	return out, nil
}
