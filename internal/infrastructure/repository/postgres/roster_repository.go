package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/soccer-stats/internal/domain/roster"
	qb "github.com/riskibarqy/soccer-stats/internal/platform/querybuilder"
)

const rosterViewName = "team_roster"

type RosterRepository struct {
	db Querier
}

func NewRosterRepository(db Querier) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListRosters(ctx context.Context, filter roster.Filter) ([]roster.Entry, error) {
	outer := qb.Select(
		"pt.season",
		"t.name AS team",
		"l.name AS league",
		"string_agg(p.name, ', ' ORDER BY p.name) AS roster",
	)
	query, args, err := withAttribution(outer, qb.Between("g.season", filter.Seasons.Start, filter.Seasons.End)).
		From("player_team pt " +
			"JOIN players p ON p.player_id = pt.player_id " +
			"JOIN teams t ON t.team_id = pt.team_id " +
			"JOIN leagues l ON l.league_id = pt.league_id").
		Where(teamNameConditions("t.name", filter.TeamName)...).
		GroupBy("pt.season", "pt.team_id", "t.name", "l.name").
		OrderBy("pt.season", "l.name", "t.name", "pt.team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team roster query: %w", err)
	}

	var rows []rosterRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team rosters seasons=%s: %w", filter.Seasons, err)
	}
	return mapRosterRows(rows), nil
}

func (r *RosterRepository) ListMaterializedRosters(ctx context.Context, filter roster.Filter) ([]roster.Entry, error) {
	conds := []qb.Condition{qb.Between("season", filter.Seasons.Start, filter.Seasons.End)}
	conds = append(conds, teamNameConditions("team", filter.TeamName)...)

	query, args, err := qb.Select("season", "team", "league", "roster").
		From(rosterViewName).
		Where(conds...).
		OrderBy("season", "league", "team", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build materialized roster query: %w", err)
	}

	var rows []rosterRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select materialized rosters seasons=%s: %w", filter.Seasons, err)
	}
	return mapRosterRows(rows), nil
}

// RefreshMaterializedRosters needs the unique index on (season, team_id).
func (r *RosterRepository) RefreshMaterializedRosters(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "REFRESH MATERIALIZED VIEW CONCURRENTLY "+rosterViewName); err != nil {
		return fmt.Errorf("refresh %s: %w", rosterViewName, err)
	}
	return nil
}

func mapRosterRows(rows []rosterRow) []roster.Entry {
	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Entry{
			Season: row.Season,
			Team:   row.Team,
			League: row.League,
			Roster: row.Roster,
		})
	}
	return out
}

func teamNameConditions(column, name string) []qb.Condition {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return []qb.Condition{qb.ILike(column, name)}
}
