package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
	mux.HandleFunc("GET /test", handler.ShotCount)
	mux.HandleFunc("GET /dashboard", handler.GetDashboard)
	newAPIDocs().register(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /top_scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /most_influential_players", handler.ListMostInfluentialPlayers)
	mux.HandleFunc("GET /clutch_players", handler.ListClutchPlayers)
	mux.HandleFunc("GET /player_performance_per_season", handler.ListPlayerSeasonPerformance)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /top_leagues", handler.ListTopLeagues)
	mux.HandleFunc("GET /top_offensive_leagues", handler.ListTopOffensiveLeagues)
	mux.HandleFunc("GET /top_defensive_leagues", handler.ListTopDefensiveLeagues)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /team_roster", handler.ListTeamRosters)
	// Same rows as /team_roster, served from the team_roster materialized view.
	mux.HandleFunc("GET /roster_test", handler.ListMaterializedRosters)
}

func registerTeamSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /total_goals", handler.ListTeamGoals)
	mux.HandleFunc("GET /wld_ratios", handler.ListTeamRecords)
	mux.HandleFunc("GET /season_performance", handler.ListTeamSeasonPoints)
	mux.HandleFunc("GET /efficiency", handler.ListTeamEfficiency)
}
