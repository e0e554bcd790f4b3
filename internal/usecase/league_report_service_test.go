package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/soccer-stats/internal/domain/leaguereport"
	"github.com/riskibarqy/soccer-stats/internal/domain/season"
	leaguereportmock "github.com/riskibarqy/soccer-stats/internal/mocks/domain/leaguereport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeagueReportService_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	repo := leaguereportmock.NewRepository(t)
	service := NewLeagueReportService(repo)
	inverted := season.Range{Start: 2019, End: 2015}

	_, err := service.TopLeagues(context.Background(), inverted)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, season.ErrInvalidRange)

	_, err = service.TopOffensiveLeagues(context.Background(), inverted)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.TopDefensiveLeagues(context.Background(), inverted)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLeagueReportService_PassesRange(t *testing.T) {
	t.Parallel()

	repo := leaguereportmock.NewRepository(t)
	service := NewLeagueReportService(repo)
	seasons := season.Single(2017)

	repo.On("ListTopDefensiveLeagues", mock.Anything, seasons).
		Return([]leaguereport.Defense{{LeagueName: "La liga"}}, nil).
		Once()

	got, err := service.TopDefensiveLeagues(context.Background(), seasons)
	require.NoError(t, err)
	assert.Equal(t, "La liga", got[0].LeagueName)
}
