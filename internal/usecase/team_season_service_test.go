package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
	teamseasonmock "github.com/riskibarqy/soccer-stats/internal/mocks/domain/teamseason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestTeamSeasonService_SeasonPointsDefaultsPageSize(t *testing.T) {
	t.Parallel()

	repo := teamseasonmock.NewRepository(t)
	service := NewTeamSeasonService(repo)

	repo.On("ListPoints", mock.Anything, mock.MatchedBy(func(f teamseason.PointsFilter) bool {
		return f.Page.Number == 2 && f.Page.Size == teamseason.DefaultPageSize
	})).Return([]teamseason.Points{}, nil).Once()

	got, err := service.SeasonPoints(context.Background(), teamseason.PointsFilter{Page: teamseason.Page{Number: 2}})
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestTeamSeasonService_SeasonPointsWithoutPage(t *testing.T) {
	t.Parallel()

	repo := teamseasonmock.NewRepository(t)
	service := NewTeamSeasonService(repo)

	repo.On("ListPoints", mock.Anything, teamseason.PointsFilter{TeamName: "Milan"}).Return([]teamseason.Points{}, nil).Once()

	_, err := service.SeasonPoints(context.Background(), teamseason.PointsFilter{TeamName: "Milan"})
	require.NoError(t, err)
}

func TestTeamSeasonService_RejectsInvalidFilters(t *testing.T) {
	t.Parallel()

	repo := teamseasonmock.NewRepository(t)
	service := NewTeamSeasonService(repo)
	ctx := context.Background()
	inverted := teamseason.Bounds{Low: ptr(5.0), High: ptr(1.0)}

	_, err := service.TotalGoals(ctx, teamseason.GoalsFilter{GoalsConceded: inverted})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, teamseason.ErrInvalidFilter)

	_, err = service.WinLossDraw(ctx, teamseason.RecordFilter{Wins: inverted})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.SeasonPoints(ctx, teamseason.PointsFilter{Page: teamseason.Page{Number: -1}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Efficiency(ctx, teamseason.EfficiencyFilter{GoalsPerShot: inverted})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamSeasonService_EfficiencyPassesFilter(t *testing.T) {
	t.Parallel()

	repo := teamseasonmock.NewRepository(t)
	service := NewTeamSeasonService(repo)
	filter := teamseason.EfficiencyFilter{GoalsPerShot: teamseason.Bounds{Low: ptr(0.1), High: ptr(0.2)}}

	repo.On("ListEfficiency", mock.Anything, filter).Return([]teamseason.Efficiency{{TotalGoals: 10}}, nil).Once()

	got, err := service.Efficiency(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 10, got[0].TotalGoals)
}
