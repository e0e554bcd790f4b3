package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/soccer-stats/internal/platform/metrics"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz answers 503 while the database cannot be reached.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	if err := h.health.Ready(ctx); err != nil {
		h.logger.WarnContext(ctx, "readiness check failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ready"})
}

// ShotCount backs /test, a database connectivity probe. Unlike the reports it
// fails loudly.
func (h *Handler) ShotCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ShotCount")
	defer span.End()

	const report = "shot_count"
	started := time.Now()

	count, err := h.playerReports.ShotCount(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "shot count failed", "error", err)
		h.metrics.ObserveReport(report, metrics.OutcomeDegraded, time.Since(started))
		annotateReport(ctx, report, metrics.OutcomeDegraded, 0)
		writeError(ctx, w, err)
		return
	}

	h.metrics.ObserveReport(report, metrics.OutcomeOK, time.Since(started))
	writeJSON(ctx, w, http.StatusOK, shotCountDTO{ShotCount: count})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	const report = "dashboard"
	started := time.Now()

	dashboard := h.dashboard.Home(ctx)
	outcome := metrics.OutcomeOK
	if len(dashboard.Degraded) > 0 {
		outcome = metrics.OutcomeDegraded
	}
	h.metrics.ObserveReport(report, outcome, time.Since(started))
	annotateReport(ctx, report, outcome, len(dashboard.TopScorers)+len(dashboard.MostInfluential)+len(dashboard.ClutchPlayers))

	writeJSON(ctx, w, http.StatusOK, toDashboardDTO(dashboard))
}
