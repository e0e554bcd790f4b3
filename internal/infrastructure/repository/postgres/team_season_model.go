package postgres

import (
	"database/sql"

	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
)

type teamSeasonKeyRow struct {
	TeamID   int64  `db:"team_id"`
	TeamName string `db:"team_name"`
	Season   int    `db:"season"`
}

func (r teamSeasonKeyRow) toDomain() teamseason.Key {
	return teamseason.Key{TeamID: r.TeamID, TeamName: r.TeamName, Season: r.Season}
}

type teamGoalsRow struct {
	teamSeasonKeyRow
	GoalsScored   int64 `db:"goals_scored"`
	GoalsConceded int64 `db:"goals_conceded"`
}

type teamRecordRow struct {
	teamSeasonKeyRow
	TotalGames int64 `db:"total_games"`
	Wins       int64 `db:"wins"`
	Losses     int64 `db:"losses"`
	Draws      int64 `db:"draws"`
}

type teamPointsRow struct {
	teamSeasonKeyRow
	TotalPoints int64 `db:"total_points"`
}

type teamEfficiencyRow struct {
	teamSeasonKeyRow
	TotalGoals   int64           `db:"total_goals"`
	TotalShots   int64           `db:"total_shots"`
	Games        int64           `db:"games"`
	GoalsPerShot sql.NullFloat64 `db:"goals_per_shot"`
	GoalsPerGame sql.NullFloat64 `db:"goals_per_game"`
}
