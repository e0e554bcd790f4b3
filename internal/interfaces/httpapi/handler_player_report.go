package httpapi

import (
	"net/http"
	"time"
)

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	started := time.Now()
	items, err := h.playerReports.TopScorers(ctx)
	respondList(ctx, h, w, "top_scorers", started, items, err, toTopScorerDTO)
}

func (h *Handler) ListMostInfluentialPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMostInfluentialPlayers")
	defer span.End()

	const report = "most_influential_players"
	started := time.Now()

	params := newQueryParams(r)
	req := limitRequest{Limit: params.Int("limit")}
	if err := h.bindQuery(ctx, params, req); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.playerReports.MostInfluential(ctx, valueOrZero(req.Limit))
	respondList(ctx, h, w, report, started, items, err, toInfluentialPlayerDTO)
}

func (h *Handler) ListClutchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClutchPlayers")
	defer span.End()

	const report = "clutch_players"
	started := time.Now()

	params := newQueryParams(r)
	req := limitRequest{Limit: params.Int("limit")}
	if err := h.bindQuery(ctx, params, req); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.playerReports.ClutchPlayers(ctx, valueOrZero(req.Limit))
	respondList(ctx, h, w, report, started, items, err, toClutchPlayerDTO)
}

func (h *Handler) ListPlayerSeasonPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerSeasonPerformance")
	defer span.End()

	const report = "player_performance_per_season"
	started := time.Now()

	params := newQueryParams(r)
	req := playerSeasonRequest{
		Name:   params.String("name"),
		Season: params.Int("season"),
	}
	if err := h.bindQuery(ctx, params, req); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.playerReports.SeasonPerformance(ctx, req.Name, req.Season)
	respondList(ctx, h, w, report, started, items, err, toSeasonPerformanceDTO)
}
