package postgres

import "database/sql"

type topScorerRow struct {
	LeagueName string `db:"league_name"`
	PlayerName string `db:"player_name"`
	TotalGoals int64  `db:"total_goals"`
}

type influentialPlayerRow struct {
	PlayerID       int64  `db:"player_id"`
	PlayerName     string `db:"player_name"`
	Appearances    int64  `db:"appearances"`
	TotalGoals     int64  `db:"total_goals"`
	TotalAssists   int64  `db:"total_assists"`
	GoalsFromShots int64  `db:"goals_from_shots"`
}

type clutchPlayerRow struct {
	Name      string `db:"name"`
	LateGoals int64  `db:"late_goals"`
}

type seasonPerformanceRow struct {
	Name                string          `db:"name"`
	Season              int             `db:"season"`
	Team                string          `db:"team"`
	League              string          `db:"league"`
	GamesPlayed         int64           `db:"games_played"`
	NumGoals            int64           `db:"num_goals"`
	NumShots            int64           `db:"num_shots"`
	NumAssists          int64           `db:"num_assists"`
	GoalsPerShot        sql.NullFloat64 `db:"goals_per_shot"`
	AvgGoalPerGame      sql.NullFloat64 `db:"avg_goal_per_game"`
	AvgOwnGoalPerGame   sql.NullFloat64 `db:"avg_own_goal_per_game"`
	AvgShotsPerGame     sql.NullFloat64 `db:"avg_shots_per_game"`
	AvgAssistsPerGame   sql.NullFloat64 `db:"avg_assists_per_game"`
	AvgKeyPassesPerGame sql.NullFloat64 `db:"avg_key_passes_per_game"`
	AvgYellowCard       sql.NullFloat64 `db:"avg_yellow_card"`
	AvgRedCard          sql.NullFloat64 `db:"avg_red_card"`
	AvgMinutesPerGame   sql.NullFloat64 `db:"avg_minutes_per_game"`
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	out := v.Float64
	return &out
}
