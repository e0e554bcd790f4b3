package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
)

func (h *Handler) ListTeamGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamGoals")
	defer span.End()

	const report = "total_goals"
	started := time.Now()

	params := newQueryParams(r)
	filter := teamseason.GoalsFilter{
		TeamName:      params.String("title"),
		GoalsScored:   params.Bounds("goals_scored"),
		GoalsConceded: params.Bounds("goals_conceded", "goals_conceded"),
	}
	if err := h.bindQuery(ctx, params, teamFilterRequest{TeamName: filter.TeamName}); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.teamSeasons.TotalGoals(ctx, filter)
	respondList(ctx, h, w, report, started, items, err, toTeamGoalsDTO)
}

func (h *Handler) ListTeamRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamRecords")
	defer span.End()

	const report = "wld_ratios"
	started := time.Now()

	params := newQueryParams(r)
	filter := teamseason.RecordFilter{
		TeamName: params.String("title"),
		Wins:     params.Bounds("wins"),
		Losses:   params.Bounds("losses"),
		Draws:    params.Bounds("draws"),
	}
	if err := h.bindQuery(ctx, params, teamFilterRequest{TeamName: filter.TeamName}); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.teamSeasons.WinLossDraw(ctx, filter)
	respondList(ctx, h, w, report, started, items, err, toTeamRecordDTO)
}

func (h *Handler) ListTeamSeasonPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamSeasonPoints")
	defer span.End()

	const report = "season_performance"
	started := time.Now()

	params := newQueryParams(r)
	req := seasonPointsRequest{
		TeamName: params.String("title"),
		Season:   params.Int("season"),
		Page:     params.Int("page"),
		PageSize: params.Int("page_size"),
	}
	points := params.Bounds("points")
	if err := h.bindQuery(ctx, params, req); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.teamSeasons.SeasonPoints(ctx, teamseason.PointsFilter{
		TeamName: req.TeamName,
		Season:   req.Season,
		Points:   points,
		Page:     teamseason.Page{Number: valueOrZero(req.Page), Size: valueOrZero(req.PageSize)},
	})
	respondList(ctx, h, w, report, started, items, err, toTeamPointsDTO)
}

func (h *Handler) ListTeamEfficiency(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamEfficiency")
	defer span.End()

	const report = "efficiency"
	started := time.Now()

	params := newQueryParams(r)
	filter := teamseason.EfficiencyFilter{
		TeamName:     params.String("title"),
		GoalsPerShot: params.Bounds("goals_per_shot"),
		GoalsPerGame: params.Bounds("goals_per_game"),
	}
	if err := h.bindQuery(ctx, params, teamFilterRequest{TeamName: filter.TeamName}); err != nil {
		h.rejectReport(ctx, w, report, started, err)
		return
	}

	items, err := h.teamSeasons.Efficiency(ctx, filter)
	respondList(ctx, h, w, report, started, items, err, toTeamEfficiencyDTO)
}
