package httpapi

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/soccer-stats/internal/domain/season"
	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
	"github.com/riskibarqy/soccer-stats/internal/usecase"
)

// queryParams reads optional query values. Later names passed to a getter
// are aliases of the first; the first non-empty one wins. Malformed numbers
// are collected and reported together by Err.
type queryParams struct {
	values url.Values
	errs   []error
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) lookup(names ...string) (string, string, bool) {
	for _, name := range names {
		if v := strings.TrimSpace(q.values.Get(name)); v != "" {
			return name, v, true
		}
	}
	return "", "", false
}

func (q *queryParams) String(names ...string) string {
	_, v, _ := q.lookup(names...)
	return v
}

func (q *queryParams) Int(names ...string) *int {
	name, raw, ok := q.lookup(names...)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, fmt.Errorf("%s must be an integer", name))
		return nil
	}
	return &v
}

func (q *queryParams) Float(names ...string) *float64 {
	name, raw, ok := q.lookup(names...)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		q.errs = append(q.errs, fmt.Errorf("%s must be a number", name))
		return nil
	}
	return &v
}

// Bounds reads <prefix>_low and <prefix>_high. lowAliases are accepted in
// place of <prefix>_low.
func (q *queryParams) Bounds(prefix string, lowAliases ...string) teamseason.Bounds {
	return teamseason.Bounds{
		Low:  q.Float(append([]string{prefix + "_low"}, lowAliases...)...),
		High: q.Float(prefix + "_high"),
	}
}

func (q *queryParams) Err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, errors.Join(q.errs...))
}

type seasonRangeRequest struct {
	StartSeason *int `validate:"omitempty,min=1900,max=2100"`
	EndSeason   *int `validate:"omitempty,min=1900,max=2100"`
	Season      *int `validate:"omitempty,min=1900,max=2100"`
}

func readSeasonRange(params *queryParams) seasonRangeRequest {
	return seasonRangeRequest{
		StartSeason: params.Int("startSeason"),
		EndSeason:   params.Int("endSeason"),
		Season:      params.Int("season"),
	}
}

func (r seasonRangeRequest) Range() season.Range {
	return season.Resolve(r.StartSeason, r.EndSeason, r.Season)
}

type limitRequest struct {
	Limit *int `validate:"omitempty,min=1"`
}

type playerSeasonRequest struct {
	Name   string `validate:"required,max=200"`
	Season *int   `validate:"omitempty,min=1900,max=2100"`
}

type rosterRequest struct {
	seasonRangeRequest
	TeamName string `validate:"max=200"`
}

type teamFilterRequest struct {
	TeamName string `validate:"max=200"`
}

type seasonPointsRequest struct {
	TeamName string `validate:"max=200"`
	Season   *int   `validate:"omitempty,min=1900,max=2100"`
	Page     *int   `validate:"omitempty,min=1"`
	PageSize *int   `validate:"omitempty,min=1,max=100"`
}
