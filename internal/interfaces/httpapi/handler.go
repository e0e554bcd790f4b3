package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/platform/metrics"
	"github.com/riskibarqy/soccer-stats/internal/usecase"
)

type Handler struct {
	playerReports *usecase.PlayerReportService
	leagueReports *usecase.LeagueReportService
	rosters       *usecase.RosterService
	teamSeasons   *usecase.TeamSeasonService
	dashboard     *usecase.DashboardService
	health        *usecase.HealthService
	metrics       metrics.Recorder
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	playerReports *usecase.PlayerReportService,
	leagueReports *usecase.LeagueReportService,
	rosters *usecase.RosterService,
	teamSeasons *usecase.TeamSeasonService,
	dashboard *usecase.DashboardService,
	health *usecase.HealthService,
	recorder metrics.Recorder,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &Handler{
		playerReports: playerReports,
		leagueReports: leagueReports,
		rosters:       rosters,
		teamSeasons:   teamSeasons,
		dashboard:     dashboard,
		health:        health,
		metrics:       recorder,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// bindQuery reports parse errors collected by params first, then runs the
// validator over the populated request.
func (h *Handler) bindQuery(ctx context.Context, params *queryParams, payload any) error {
	if err := params.Err(); err != nil {
		return err
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) rejectReport(ctx context.Context, w http.ResponseWriter, report string, started time.Time, err error) {
	h.metrics.ObserveReport(report, metrics.OutcomeInvalid, time.Since(started))
	annotateReport(ctx, report, metrics.OutcomeInvalid, 0)
	writeError(ctx, w, err)
}

// respondList writes items as a bare JSON array. Invalid input is a 400;
// any other failure is logged and answered with an empty array.
func respondList[T, D any](
	ctx context.Context,
	h *Handler,
	w http.ResponseWriter,
	report string,
	started time.Time,
	items []T,
	err error,
	toDTO func(T) D,
) {
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			h.rejectReport(ctx, w, report, started, err)
			return
		}
		h.logger.ErrorContext(ctx, "report query failed, serving empty result", "report", report, "error", err)
		h.metrics.ObserveReport(report, metrics.OutcomeDegraded, time.Since(started))
		annotateReport(ctx, report, metrics.OutcomeDegraded, 0)
		writeJSON(ctx, w, http.StatusOK, []D{})
		return
	}

	h.metrics.ObserveReport(report, metrics.OutcomeOK, time.Since(started))
	annotateReport(ctx, report, metrics.OutcomeOK, len(items))
	writeJSON(ctx, w, http.StatusOK, mapSlice(items, toDTO))
}

func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
