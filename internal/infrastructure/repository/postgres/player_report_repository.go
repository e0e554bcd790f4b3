package postgres

import (
	"context"
	"fmt"

	"github.com/riskibarqy/soccer-stats/internal/domain/playerreport"
	qb "github.com/riskibarqy/soccer-stats/internal/platform/querybuilder"
)

const shotResultGoal = "Goal"

type PlayerReportRepository struct {
	db Querier
}

func NewPlayerReportRepository(db Querier) *PlayerReportRepository {
	return &PlayerReportRepository{db: db}
}

func (r *PlayerReportRepository) ListTopScorers(ctx context.Context) ([]playerreport.TopScorer, error) {
	scorers := qb.Select(
		"l.name AS league_name",
		"p.name AS player_name",
		"SUM(a.goals + a.own_goals) AS total_goals",
		"RANK() OVER (PARTITION BY a.league_id ORDER BY SUM(a.goals + a.own_goals) DESC) AS scorer_rank",
	).From("appearances a JOIN players p ON p.player_id = a.player_id JOIN leagues l ON l.league_id = a.league_id").
		GroupBy("a.league_id", "l.name", "a.player_id", "p.name")

	query, args, err := qb.Select("league_name", "player_name", "total_goals").
		With("league_scorers", scorers).
		From("league_scorers").
		Where(qb.Expr("scorer_rank = 1")).
		OrderBy("league_name", "player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top scorers query: %w", err)
	}

	var rows []topScorerRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top scorers: %w", err)
	}

	out := make([]playerreport.TopScorer, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerreport.TopScorer{
			LeagueName: row.LeagueName,
			PlayerName: row.PlayerName,
			TotalGoals: int(row.TotalGoals),
		})
	}
	return out, nil
}

func (r *PlayerReportRepository) ListMostInfluential(ctx context.Context, limit int) ([]playerreport.InfluentialPlayer, error) {
	if limit <= 0 {
		limit = playerreport.DefaultInfluentialLimit
	}

	totals := qb.Select(
		"a.player_id",
		"COUNT(DISTINCT a.game_id) AS appearances",
		"SUM(a.goals) AS total_goals",
		"SUM(a.assists) AS total_assists",
	).From("appearances a").
		GroupBy("a.player_id")

	shotGoals := qb.Select("s.shooter_id AS player_id", "COUNT(*) AS goals_from_shots").
		From("shots s").
		Where(qb.Eq("s.shot_result", shotResultGoal)).
		GroupBy("s.shooter_id")

	query, args, err := qb.Select(
		"p.player_id",
		"p.name AS player_name",
		"pt.appearances",
		"pt.total_goals",
		"pt.total_assists",
		"COALESCE(sg.goals_from_shots, 0) AS goals_from_shots",
	).With("player_totals", totals).
		With("shot_goals", shotGoals).
		From("player_totals pt JOIN players p ON p.player_id = pt.player_id LEFT JOIN shot_goals sg ON sg.player_id = pt.player_id").
		OrderBy("pt.total_goals DESC", "pt.total_assists DESC", "p.name ASC", "p.player_id ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build most influential players query: %w", err)
	}

	var rows []influentialPlayerRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select most influential players: %w", err)
	}

	out := make([]playerreport.InfluentialPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerreport.InfluentialPlayer{
			PlayerID:       row.PlayerID,
			PlayerName:     row.PlayerName,
			Appearances:    int(row.Appearances),
			TotalGoals:     int(row.TotalGoals),
			TotalAssists:   int(row.TotalAssists),
			GoalsFromShots: int(row.GoalsFromShots),
		})
	}
	return out, nil
}

func (r *PlayerReportRepository) ListClutchPlayers(ctx context.Context, limit int) ([]playerreport.ClutchPlayer, error) {
	if limit <= 0 || limit > playerreport.MaxClutchLimit {
		limit = playerreport.DefaultClutchLimit
	}

	query, args, err := qb.Select("p.name", "COUNT(*) AS late_goals").
		From("shots s JOIN players p ON p.player_id = s.shooter_id").
		Where(
			qb.Between("s.minute", playerreport.ClutchFromMinute, playerreport.ClutchToMinute),
			qb.Eq("s.shot_result", shotResultGoal),
		).
		GroupBy("s.shooter_id", "p.name").
		OrderBy("late_goals DESC", "p.name ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build clutch players query: %w", err)
	}

	var rows []clutchPlayerRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clutch players: %w", err)
	}

	out := make([]playerreport.ClutchPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerreport.ClutchPlayer{Name: row.Name, LateGoals: int(row.LateGoals)})
	}
	return out, nil
}

func (r *PlayerReportRepository) ListSeasonPerformance(ctx context.Context, in playerreport.SeasonPerformanceQuery) ([]playerreport.SeasonPerformance, error) {
	scope := []qb.Condition{qb.Eq("p.name", in.Name)}
	if in.Season != nil {
		scope = append(scope, qb.Eq("g.season", *in.Season))
	}

	seasonTotals := qb.Select(
		"player_id",
		"season",
		"SUM(goals) AS num_goals",
		"SUM(shots) AS num_shots",
		"SUM(assists) AS num_assists",
		"ROUND(AVG(goals), 2)::float8 AS avg_goal_per_game",
		"ROUND(AVG(own_goals), 2)::float8 AS avg_own_goal_per_game",
		"ROUND(AVG(shots), 2)::float8 AS avg_shots_per_game",
		"ROUND(AVG(assists), 2)::float8 AS avg_assists_per_game",
		"ROUND(AVG(key_passes), 2)::float8 AS avg_key_passes_per_game",
		"ROUND(AVG(yellow_card), 2)::float8 AS avg_yellow_card",
		"ROUND(AVG(red_card), 2)::float8 AS avg_red_card",
		"ROUND(AVG(time), 2)::float8 AS avg_minutes_per_game",
	).From("scoped_appearances").
		GroupBy("player_id", "season")

	query, args, err := withAttribution(qb.Select(
		"p.name",
		"st.season",
		"t.name AS team",
		"l.name AS league",
		"pt.games_played",
		"st.num_goals",
		"st.num_shots",
		"st.num_assists",
		"ROUND(st.num_goals::numeric / NULLIF(st.num_shots, 0), 2)::float8 AS goals_per_shot",
		"st.avg_goal_per_game",
		"st.avg_own_goal_per_game",
		"st.avg_shots_per_game",
		"st.avg_assists_per_game",
		"st.avg_key_passes_per_game",
		"st.avg_yellow_card",
		"st.avg_red_card",
		"st.avg_minutes_per_game",
	), scope...).
		With("season_totals", seasonTotals).
		From("season_totals st " +
			"JOIN player_team pt ON pt.player_id = st.player_id AND pt.season = st.season " +
			"JOIN players p ON p.player_id = st.player_id " +
			"JOIN teams t ON t.team_id = pt.team_id " +
			"JOIN leagues l ON l.league_id = pt.league_id").
		OrderBy("p.name", "st.season", "t.name", "p.player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build player season performance query: %w", err)
	}

	var rows []seasonPerformanceRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player season performance name=%q: %w", in.Name, err)
	}

	out := make([]playerreport.SeasonPerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerreport.SeasonPerformance{
			Name:                  row.Name,
			Season:                row.Season,
			Team:                  row.Team,
			League:                row.League,
			GamesPlayed:           int(row.GamesPlayed),
			Goals:                 int(row.NumGoals),
			Shots:                 int(row.NumShots),
			Assists:               int(row.NumAssists),
			GoalsPerShot:          nullFloat(row.GoalsPerShot),
			AvgGoalsPerGame:       nullFloat(row.AvgGoalPerGame),
			AvgOwnGoalsPerGame:    nullFloat(row.AvgOwnGoalPerGame),
			AvgShotsPerGame:       nullFloat(row.AvgShotsPerGame),
			AvgAssistsPerGame:     nullFloat(row.AvgAssistsPerGame),
			AvgKeyPassesPerGame:   nullFloat(row.AvgKeyPassesPerGame),
			AvgYellowCardsPerGame: nullFloat(row.AvgYellowCard),
			AvgRedCardsPerGame:    nullFloat(row.AvgRedCard),
			AvgMinutesPerGame:     nullFloat(row.AvgMinutesPerGame),
		})
	}
	return out, nil
}

func (r *PlayerReportRepository) CountShots(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From("shots").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count shots query: %w", err)
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count shots: %w", err)
	}
	return count, nil
}
