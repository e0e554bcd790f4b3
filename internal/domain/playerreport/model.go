package playerreport

// Limits accepted by the player ranking reports.
const (
	DefaultInfluentialLimit = 5
	MaxInfluentialLimit     = 50
	DefaultClutchLimit      = 10
	MaxClutchLimit          = 10
)

// Late-game window, in match minutes, used by the clutch report.
const (
	ClutchFromMinute = 75
	ClutchToMinute   = 90
)

// TopScorer is a rank-1 scorer within a league. Own goals count toward the total.
type TopScorer struct {
	LeagueName string
	PlayerName string
	TotalGoals int
}

type InfluentialPlayer struct {
	PlayerID       int64
	PlayerName     string
	Appearances    int
	TotalGoals     int
	TotalAssists   int
	GoalsFromShots int
}

type ClutchPlayer struct {
	Name      string
	LateGoals int
}

// SeasonPerformance is one season of a player, attributed to the team they
// played the most games for that season. Ratios are nil when undefined.
type SeasonPerformance struct {
	Name                  string
	Season                int
	Team                  string
	League                string
	GamesPlayed           int
	Goals                 int
	Shots                 int
	Assists               int
	GoalsPerShot          *float64
	AvgGoalsPerGame       *float64
	AvgOwnGoalsPerGame    *float64
	AvgShotsPerGame       *float64
	AvgAssistsPerGame     *float64
	AvgKeyPassesPerGame   *float64
	AvgYellowCardsPerGame *float64
	AvgRedCardsPerGame    *float64
	AvgMinutesPerGame     *float64
}

type SeasonPerformanceQuery struct {
	Name   string
	Season *int
}
