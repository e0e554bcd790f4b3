package teamseason

// Points awarded per result.
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

const DefaultPageSize = 10

// Key identifies one team in one season.
type Key struct {
	TeamID   int64
	TeamName string
	Season   int
}

type Goals struct {
	Key
	GoalsScored   int
	GoalsConceded int
}

// Record satisfies Wins + Losses + Draws == TotalGames.
type Record struct {
	Key
	TotalGames int
	Wins       int
	Losses     int
	Draws      int
}

type Points struct {
	Key
	TotalPoints int
}

// Efficiency ratios are nil when their denominator is zero.
type Efficiency struct {
	Key
	TotalGoals   int
	TotalShots   int
	Games        int
	GoalsPerShot *float64
	GoalsPerGame *float64
}
