package leaguereport

type LeagueGoals struct {
	LeagueName        string
	AvgTotalGoals     *float64
	AvgGoalDifference *float64
}

// Offense averages are per team per game.
type Offense struct {
	LeagueName       string
	AvgGoals         *float64
	AvgExpectedGoals *float64
	AvgShots         *float64
	AvgShotsOnTarget *float64
	AvgDeepPasses    *float64
	AvgCorners       *float64
}

// Defense averages are per team per game, measured against the opponent.
type Defense struct {
	LeagueName       string
	AvgGoalsConceded *float64
	AvgShotsFaced    *float64
	AvgPPDA          *float64
}
