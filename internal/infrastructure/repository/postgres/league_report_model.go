package postgres

import "database/sql"

type leagueGoalsRow struct {
	LeagueName        string          `db:"league_name"`
	AvgTotalGoals     sql.NullFloat64 `db:"avg_total_goals"`
	AvgGoalDifference sql.NullFloat64 `db:"avg_goal_difference"`
}

type leagueOffenseRow struct {
	LeagueName       string          `db:"league_name"`
	AvgGoals         sql.NullFloat64 `db:"avg_goals"`
	AvgExpectedGoals sql.NullFloat64 `db:"avg_x_goals"`
	AvgShots         sql.NullFloat64 `db:"avg_shots"`
	AvgShotsOnTarget sql.NullFloat64 `db:"avg_shots_on_target"`
	AvgDeepPasses    sql.NullFloat64 `db:"avg_deep_passes"`
	AvgCorners       sql.NullFloat64 `db:"avg_corners"`
}

type leagueDefenseRow struct {
	LeagueName       string          `db:"league_name"`
	AvgGoalsConceded sql.NullFloat64 `db:"avg_goals_conceded"`
	AvgShotsFaced    sql.NullFloat64 `db:"avg_shots_faced"`
	AvgPPDA          sql.NullFloat64 `db:"avg_ppda"`
}
