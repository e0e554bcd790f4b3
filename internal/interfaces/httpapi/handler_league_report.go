package httpapi

import (
	"net/http"
	"time"
)

func (h *Handler) ListTopLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopLeagues")
	defer span.End()

	const report = "top_leagues"
	started := time.Now()

	params := newQueryParams(r)
	req := readSeasonRange(params)
	if err := h.bindQuery(ctx, params, req); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.leagueReports.TopLeagues(ctx, req.Range())
	respondList(ctx, h, w, report, started, items, err, toLeagueGoalsDTO)
}

func (h *Handler) ListTopOffensiveLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopOffensiveLeagues")
	defer span.End()

	const report = "top_offensive_leagues"
	started := time.Now()

	params := newQueryParams(r)
	req := readSeasonRange(params)
	if err := h.bindQuery(ctx, params, req); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.leagueReports.TopOffensiveLeagues(ctx, req.Range())
	respondList(ctx, h, w, report, started, items, err, toLeagueOffenseDTO)
}

func (h *Handler) ListTopDefensiveLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopDefensiveLeagues")
	defer span.End()

	const report = "top_defensive_leagues"
	started := time.Now()

	params := newQueryParams(r)
	req := readSeasonRange(params)
	if err := h.bindQuery(ctx, params, req); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.leagueReports.TopDefensiveLeagues(ctx, req.Range())
	respondList(ctx, h, w, report, started, items, err, toLeagueDefenseDTO)
}
