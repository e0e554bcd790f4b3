package roster

import "github.com/riskibarqy/soccer-stats/internal/domain/season"

// Entry lists the players attributed to a team for one season, sorted by
// name and joined with ", ".
type Entry struct {
	Season int
	Team   string
	League string
	Roster string
}

type Filter struct {
	TeamName string
	Seasons  season.Range
}
