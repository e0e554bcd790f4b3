package httpapi

import (
	"github.com/riskibarqy/soccer-stats/internal/domain/leaguereport"
	"github.com/riskibarqy/soccer-stats/internal/domain/playerreport"
	"github.com/riskibarqy/soccer-stats/internal/domain/roster"
	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
	"github.com/riskibarqy/soccer-stats/internal/usecase"
)

// Field names match what the dashboard client already reads, including the
// odd camelCase ones.

type shotCountDTO struct {
	ShotCount int64 `json:"shotCount"`
}

type topScorerDTO struct {
	LeagueName string `json:"league_name"`
	PlayerName string `json:"player_name"`
	TotalGoals int    `json:"total_goals"`
}

type influentialPlayerDTO struct {
	PlayerID       int64  `json:"playerID"`
	PlayerName     string `json:"player_name"`
	Appearances    int    `json:"appearances"`
	TotalGoals     int    `json:"total_goals"`
	TotalAssists   int    `json:"total_assists"`
	GoalsFromShots int    `json:"goals_from_shots"`
}

type clutchPlayerDTO struct {
	Name      string `json:"name"`
	LateGoals int    `json:"late_goals"`
}

type seasonPerformanceDTO struct {
	Name                string   `json:"name"`
	Season              int      `json:"season"`
	Team                string   `json:"team"`
	League              string   `json:"league"`
	GamesPlayed         int      `json:"games_played"`
	NumGoals            int      `json:"num_goals"`
	NumShots            int      `json:"num_shots"`
	NumAssists          int      `json:"num_assists"`
	GoalsPerShot        *float64 `json:"goals_per_shot"`
	AvgGoalPerGame      *float64 `json:"avg_goal_per_game"`
	AvgOwnGoalPerGame   *float64 `json:"avg_own_goal_per_game"`
	AvgShotsPerGame     *float64 `json:"avg_shots_per_game"`
	AvgAssistsPerGame   *float64 `json:"avg_assists_per_game"`
	AvgKeyPassesPerGame *float64 `json:"avg_keyPasses_per_game"`
	AvgYellowCard       *float64 `json:"avg_yellowCard"`
	AvgRedCard          *float64 `json:"avg_redCard"`
	AvgMinutesPerGame   *float64 `json:"avg_minutes_per_game"`
}

type leagueGoalsDTO struct {
	LeagueName        string   `json:"league_name"`
	AvgTotalGoals     *float64 `json:"avg_total_goals"`
	AvgGoalDifference *float64 `json:"avg_goal_difference"`
}

type leagueOffenseDTO struct {
	LeagueName       string   `json:"league_name"`
	AvgGoals         *float64 `json:"avg_goals"`
	AvgExpectedGoals *float64 `json:"avg_expected_goals"`
	AvgShots         *float64 `json:"avg_shots"`
	AvgShotsOnTarget *float64 `json:"avg_shots_on_target"`
	AvgDeepShots     *float64 `json:"avg_deep_shots"`
	AvgCorners       *float64 `json:"avg_corners"`
}

type leagueDefenseDTO struct {
	LeagueName       string   `json:"league_name"`
	AvgGoalsConceded *float64 `json:"avg_goals_conceded"`
	AvgShotsFaced    *float64 `json:"avg_shots_faced"`
	AvgPPDA          *float64 `json:"avg_ppda"`
}

type rosterDTO struct {
	Season int    `json:"season"`
	Team   string `json:"team"`
	League string `json:"league"`
	Roster string `json:"roster"`
}

type teamSeasonKeyDTO struct {
	TeamID   int64  `json:"teamID"`
	TeamName string `json:"team_name"`
	Season   int    `json:"season"`
}

type teamGoalsDTO struct {
	teamSeasonKeyDTO
	GoalsScored   int `json:"goals_scored"`
	GoalsConceded int `json:"goals_conceded"`
}

type teamRecordDTO struct {
	teamSeasonKeyDTO
	TotalGames int `json:"total_games"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Draws      int `json:"draws"`
}

type teamPointsDTO struct {
	teamSeasonKeyDTO
	TotalPoints int `json:"total_points"`
}

type teamEfficiencyDTO struct {
	teamSeasonKeyDTO
	TotalGoals   int      `json:"total_goals"`
	TotalShots   int      `json:"total_shots"`
	Games        int      `json:"games"`
	GoalsPerShot *float64 `json:"goals_per_shot"`
	GoalsPerGame *float64 `json:"goals_per_game"`
}

type dashboardDTO struct {
	TopScorers      []topScorerDTO         `json:"top_scorers"`
	MostInfluential []influentialPlayerDTO `json:"most_influential_players"`
	ClutchPlayers   []clutchPlayerDTO      `json:"clutch_players"`
}

func toTopScorerDTO(v playerreport.TopScorer) topScorerDTO {
	return topScorerDTO{LeagueName: v.LeagueName, PlayerName: v.PlayerName, TotalGoals: v.TotalGoals}
}

func toInfluentialPlayerDTO(v playerreport.InfluentialPlayer) influentialPlayerDTO {
	return influentialPlayerDTO{
		PlayerID:       v.PlayerID,
		PlayerName:     v.PlayerName,
		Appearances:    v.Appearances,
		TotalGoals:     v.TotalGoals,
		TotalAssists:   v.TotalAssists,
		GoalsFromShots: v.GoalsFromShots,
	}
}

func toClutchPlayerDTO(v playerreport.ClutchPlayer) clutchPlayerDTO {
	return clutchPlayerDTO{Name: v.Name, LateGoals: v.LateGoals}
}

func toSeasonPerformanceDTO(v playerreport.SeasonPerformance) seasonPerformanceDTO {
	return seasonPerformanceDTO{
		Name:                v.Name,
		Season:              v.Season,
		Team:                v.Team,
		League:              v.League,
		GamesPlayed:         v.GamesPlayed,
		NumGoals:            v.Goals,
		NumShots:            v.Shots,
		NumAssists:          v.Assists,
		GoalsPerShot:        v.GoalsPerShot,
		AvgGoalPerGame:      v.AvgGoalsPerGame,
		AvgOwnGoalPerGame:   v.AvgOwnGoalsPerGame,
		AvgShotsPerGame:     v.AvgShotsPerGame,
		AvgAssistsPerGame:   v.AvgAssistsPerGame,
		AvgKeyPassesPerGame: v.AvgKeyPassesPerGame,
		AvgYellowCard:       v.AvgYellowCardsPerGame,
		AvgRedCard:          v.AvgRedCardsPerGame,
		AvgMinutesPerGame:   v.AvgMinutesPerGame,
	}
}

func toLeagueGoalsDTO(v leaguereport.LeagueGoals) leagueGoalsDTO {
	return leagueGoalsDTO{
		LeagueName:        v.LeagueName,
		AvgTotalGoals:     v.AvgTotalGoals,
		AvgGoalDifference: v.AvgGoalDifference,
	}
}

func toLeagueOffenseDTO(v leaguereport.Offense) leagueOffenseDTO {
	return leagueOffenseDTO{
		LeagueName:       v.LeagueName,
		AvgGoals:         v.AvgGoals,
		AvgExpectedGoals: v.AvgExpectedGoals,
		AvgShots:         v.AvgShots,
		AvgShotsOnTarget: v.AvgShotsOnTarget,
		AvgDeepShots:     v.AvgDeepPasses,
		AvgCorners:       v.AvgCorners,
	}
}

func toLeagueDefenseDTO(v leaguereport.Defense) leagueDefenseDTO {
	return leagueDefenseDTO{
		LeagueName:       v.LeagueName,
		AvgGoalsConceded: v.AvgGoalsConceded,
		AvgShotsFaced:    v.AvgShotsFaced,
		AvgPPDA:          v.AvgPPDA,
	}
}

func toRosterDTO(v roster.Entry) rosterDTO {
	return rosterDTO{Season: v.Season, Team: v.Team, League: v.League, Roster: v.Roster}
}

func toTeamSeasonKeyDTO(k teamseason.Key) teamSeasonKeyDTO {
	return teamSeasonKeyDTO{TeamID: k.TeamID, TeamName: k.TeamName, Season: k.Season}
}

func toTeamGoalsDTO(v teamseason.Goals) teamGoalsDTO {
	return teamGoalsDTO{
		teamSeasonKeyDTO: toTeamSeasonKeyDTO(v.Key),
		GoalsScored:      v.GoalsScored,
		GoalsConceded:    v.GoalsConceded,
	}
}

func toTeamRecordDTO(v teamseason.Record) teamRecordDTO {
	return teamRecordDTO{
		teamSeasonKeyDTO: toTeamSeasonKeyDTO(v.Key),
		TotalGames:       v.TotalGames,
		Wins:             v.Wins,
		Losses:           v.Losses,
		Draws:            v.Draws,
	}
}

func toTeamPointsDTO(v teamseason.Points) teamPointsDTO {
	return teamPointsDTO{teamSeasonKeyDTO: toTeamSeasonKeyDTO(v.Key), TotalPoints: v.TotalPoints}
}

func toTeamEfficiencyDTO(v teamseason.Efficiency) teamEfficiencyDTO {
	return teamEfficiencyDTO{
		teamSeasonKeyDTO: toTeamSeasonKeyDTO(v.Key),
		TotalGoals:       v.TotalGoals,
		TotalShots:       v.TotalShots,
		Games:            v.Games,
		GoalsPerShot:     v.GoalsPerShot,
		GoalsPerGame:     v.GoalsPerGame,
	}
}

func toDashboardDTO(v usecase.HomeDashboard) dashboardDTO {
	return dashboardDTO{
		TopScorers:      mapSlice(v.TopScorers, toTopScorerDTO),
		MostInfluential: mapSlice(v.MostInfluential, toInfluentialPlayerDTO),
		ClutchPlayers:   mapSlice(v.ClutchPlayers, toClutchPlayerDTO),
	}
}
