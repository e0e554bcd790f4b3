package postgres

import (
	"context"
	"fmt"

	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
	qb "github.com/riskibarqy/soccer-stats/internal/platform/querybuilder"
)

// teamGamesSQL yields one row per team per game, seen from that team's side.
const teamGamesSQL = "SELECT game_id, season, home_team_id AS team_id, home_goals AS goals_for, away_goals AS goals_against FROM games " +
	"UNION ALL SELECT game_id, season, away_team_id AS team_id, away_goals AS goals_for, home_goals AS goals_against FROM games"

const (
	winsExpr   = "COUNT(*) FILTER (WHERE tg.goals_for > tg.goals_against)"
	lossesExpr = "COUNT(*) FILTER (WHERE tg.goals_for < tg.goals_against)"
	drawsExpr  = "COUNT(*) FILTER (WHERE tg.goals_for = tg.goals_against)"

	goalsPerShotExpr = "SUM(ts.goals)::float8 / NULLIF(SUM(ts.shots), 0)"
	goalsPerGameExpr = "SUM(ts.goals)::float8 / NULLIF(COUNT(*), 0)"
)

var pointsExpr = fmt.Sprintf(
	"SUM(CASE WHEN tg.goals_for > tg.goals_against THEN %d WHEN tg.goals_for = tg.goals_against THEN %d ELSE %d END)",
	teamseason.PointsWin, teamseason.PointsDraw, teamseason.PointsLoss,
)

var teamSeasonKeyColumns = []string{"tg.team_id", "t.name AS team_name", "tg.season"}

type TeamSeasonRepository struct {
	db Querier
}

func NewTeamSeasonRepository(db Querier) *TeamSeasonRepository {
	return &TeamSeasonRepository{db: db}
}

func (r *TeamSeasonRepository) ListGoals(ctx context.Context, filter teamseason.GoalsFilter) ([]teamseason.Goals, error) {
	having := rangeConditions("SUM(tg.goals_for)", filter.GoalsScored)
	having = append(having, rangeConditions("SUM(tg.goals_against)", filter.GoalsConceded)...)

	query, args, err := teamGamesSelect(filter.TeamName,
		"SUM(tg.goals_for) AS goals_scored",
		"SUM(tg.goals_against) AS goals_conceded",
	).Having(having...).
		OrderBy("tg.season", "t.name", "tg.team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team goals query: %w", err)
	}

	var rows []teamGoalsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team goals: %w", err)
	}

	out := make([]teamseason.Goals, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamseason.Goals{
			Key:           row.toDomain(),
			GoalsScored:   int(row.GoalsScored),
			GoalsConceded: int(row.GoalsConceded),
		})
	}
	return out, nil
}

func (r *TeamSeasonRepository) ListRecords(ctx context.Context, filter teamseason.RecordFilter) ([]teamseason.Record, error) {
	having := rangeConditions(winsExpr, filter.Wins)
	having = append(having, rangeConditions(lossesExpr, filter.Losses)...)
	having = append(having, rangeConditions(drawsExpr, filter.Draws)...)

	query, args, err := teamGamesSelect(filter.TeamName,
		"COUNT(*) AS total_games",
		winsExpr+" AS wins",
		lossesExpr+" AS losses",
		drawsExpr+" AS draws",
	).Having(having...).
		OrderBy("tg.season", "t.name", "tg.team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team records query: %w", err)
	}

	var rows []teamRecordRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team records: %w", err)
	}

	out := make([]teamseason.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamseason.Record{
			Key:        row.toDomain(),
			TotalGames: int(row.TotalGames),
			Wins:       int(row.Wins),
			Losses:     int(row.Losses),
			Draws:      int(row.Draws),
		})
	}
	return out, nil
}

func (r *TeamSeasonRepository) ListPoints(ctx context.Context, filter teamseason.PointsFilter) ([]teamseason.Points, error) {
	b := teamGamesSelect(filter.TeamName, pointsExpr+" AS total_points")
	if filter.Season != nil {
		b.Where(qb.Eq("tg.season", *filter.Season))
	}
	b.Having(rangeConditions(pointsExpr, filter.Points)...).
		OrderBy("total_points DESC", "tg.season", "t.name", "tg.team_id")
	if filter.Page.Enabled() {
		b.Limit(filter.Page.Size).Offset(filter.Page.Offset())
	}

	query, args, err := b.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team points query: %w", err)
	}

	var rows []teamPointsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team points: %w", err)
	}

	out := make([]teamseason.Points, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamseason.Points{Key: row.toDomain(), TotalPoints: int(row.TotalPoints)})
	}
	return out, nil
}

// ListEfficiency reads per-game team totals from teamstats, so shots are the
// team's own shots rather than every player's in the game.
func (r *TeamSeasonRepository) ListEfficiency(ctx context.Context, filter teamseason.EfficiencyFilter) ([]teamseason.Efficiency, error) {
	having := rangeConditions(goalsPerShotExpr, filter.GoalsPerShot)
	having = append(having, rangeConditions(goalsPerGameExpr, filter.GoalsPerGame)...)

	query, args, err := qb.Select(
		"ts.team_id",
		"t.name AS team_name",
		"ts.season",
		"SUM(ts.goals) AS total_goals",
		"SUM(ts.shots) AS total_shots",
		"COUNT(*) AS games",
		goalsPerShotExpr+" AS goals_per_shot",
		goalsPerGameExpr+" AS goals_per_game",
	).From("teamstats ts JOIN teams t ON t.team_id = ts.team_id").
		Where(teamNameConditions("t.name", filter.TeamName)...).
		GroupBy("ts.team_id", "t.name", "ts.season").
		Having(having...).
		OrderBy("ts.season", "t.name", "ts.team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team efficiency query: %w", err)
	}

	var rows []teamEfficiencyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team efficiency: %w", err)
	}

	out := make([]teamseason.Efficiency, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamseason.Efficiency{
			Key:          row.toDomain(),
			TotalGoals:   int(row.TotalGoals),
			TotalShots:   int(row.TotalShots),
			Games:        int(row.Games),
			GoalsPerShot: nullFloat(row.GoalsPerShot),
			GoalsPerGame: nullFloat(row.GoalsPerGame),
		})
	}
	return out, nil
}

func teamGamesSelect(teamName string, aggregates ...string) *qb.SelectBuilder {
	columns := append(append([]string(nil), teamSeasonKeyColumns...), aggregates...)
	return qb.Select(columns...).
		With("team_games", qb.Expr(teamGamesSQL)).
		From("team_games tg JOIN teams t ON t.team_id = tg.team_id").
		Where(teamNameConditions("t.name", teamName)...).
		GroupBy("tg.team_id", "t.name", "tg.season")
}

// rangeConditions compares as float8 so fractional bounds apply to integer
// aggregates. A NULL aggregate never satisfies a bound.
func rangeConditions(expr string, bounds teamseason.Bounds) []qb.Condition {
	var out []qb.Condition
	if bounds.Low != nil {
		out = append(out, qb.Gte("("+expr+")::float8", *bounds.Low))
	}
	if bounds.High != nil {
		out = append(out, qb.Lte("("+expr+")::float8", *bounds.High))
	}
	return out
}
