package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/riskibarqy/soccer-stats/internal/domain/roster"
)

func (h *Handler) ListTeamRosters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamRosters")
	defer span.End()

	h.serveRosters(ctx, w, r, "team_roster", h.rosters.TeamRoster)
}

func (h *Handler) ListMaterializedRosters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMaterializedRosters")
	defer span.End()

	h.serveRosters(ctx, w, r, "roster_test", h.rosters.MaterializedRoster)
}

func (h *Handler) serveRosters(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	report string,
	list func(context.Context, roster.Filter) ([]roster.Entry, error),
) {
	started := time.Now()

	params := newQueryParams(r)
	req := rosterRequest{
		seasonRangeRequest: readSeasonRange(params),
		TeamName:           params.String("teamName", "title"),
	}
	if err := h.bindQuery(ctx, params, req); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := list(ctx, roster.Filter{TeamName: req.TeamName, Seasons: req.Range()})
	respondList(ctx, h, w, report, started, items, err, toRosterDTO)
}
