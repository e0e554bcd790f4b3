package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/soccer-stats/internal/domain/playerreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerReportRepository_ListTopScorers(t *testing.T) {
	db := &fakeQuerier{fill: func(dest any) {
		*dest.(*[]topScorerRow) = []topScorerRow{
			{LeagueName: "EPL", PlayerName: "Harry Kane", TotalGoals: 30},
			{LeagueName: "EPL", PlayerName: "Mohamed Salah", TotalGoals: 30},
		}
	}}
	repo := NewPlayerReportRepository(db)

	got, err := repo.ListTopScorers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, playerreport.TopScorer{LeagueName: "EPL", PlayerName: "Harry Kane", TotalGoals: 30}, got[0])

	q := db.last()
	assert.Contains(t, q.query, "RANK() OVER (PARTITION BY a.league_id ORDER BY SUM(a.goals + a.own_goals) DESC)")
	assert.Contains(t, q.query, "WHERE scorer_rank = 1")
	assert.Empty(t, q.args)
}

func TestPlayerReportRepository_ListMostInfluential(t *testing.T) {
	db := &fakeQuerier{fill: func(dest any) {
		*dest.(*[]influentialPlayerRow) = []influentialPlayerRow{
			{PlayerID: 647, PlayerName: "Harry Kane", Appearances: 35, TotalGoals: 30, TotalAssists: 2, GoalsFromShots: 29},
		}
	}}
	repo := NewPlayerReportRepository(db)

	got, err := repo.ListMostInfluential(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(647), got[0].PlayerID)
	assert.Equal(t, 29, got[0].GoalsFromShots)

	q := db.last()
	assert.Contains(t, q.query, "ORDER BY pt.total_goals DESC, pt.total_assists DESC, p.name ASC")
	assert.True(t, strings.HasSuffix(q.query, "LIMIT 10"))
	assert.Equal(t, []any{shotResultGoal}, q.args)
}

func TestPlayerReportRepository_ListMostInfluentialDefaultsLimit(t *testing.T) {
	db := &fakeQuerier{}
	repo := NewPlayerReportRepository(db)

	got, err := repo.ListMostInfluential(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.True(t, strings.HasSuffix(db.last().query, "LIMIT 5"))
}

func TestPlayerReportRepository_ListClutchPlayers(t *testing.T) {
	db := &fakeQuerier{fill: func(dest any) {
		*dest.(*[]clutchPlayerRow) = []clutchPlayerRow{{Name: "Sergio Agüero", LateGoals: 12}}
	}}
	repo := NewPlayerReportRepository(db)

	got, err := repo.ListClutchPlayers(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, []playerreport.ClutchPlayer{{Name: "Sergio Agüero", LateGoals: 12}}, got)

	q := db.last()
	assert.Contains(t, q.query, "s.minute BETWEEN $1 AND $2 AND s.shot_result = $3")
	assert.True(t, strings.HasSuffix(q.query, "LIMIT 10"))
	assert.Equal(t, []any{playerreport.ClutchFromMinute, playerreport.ClutchToMinute, shotResultGoal}, q.args)
}

func TestPlayerReportRepository_ListSeasonPerformance(t *testing.T) {
	db := &fakeQuerier{fill: func(dest any) {
		*dest.(*[]seasonPerformanceRow) = []seasonPerformanceRow{{
			Name:           "Robert'); DROP TABLE players;--",
			Season:         2015,
			Team:           "Bayern Munich",
			League:         "Bundesliga",
			GamesPlayed:    2,
			NumGoals:       0,
			NumShots:       0,
			GoalsPerShot:   sql.NullFloat64{},
			AvgGoalPerGame: sql.NullFloat64{Float64: 0.5, Valid: true},
		}}
	}}
	repo := NewPlayerReportRepository(db)

	name := "Robert'); DROP TABLE players;--"
	got, err := repo.ListSeasonPerformance(context.Background(), playerreport.SeasonPerformanceQuery{Name: name, Season: intPtr(2015)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].GoalsPerShot)
	require.NotNil(t, got[0].AvgGoalsPerGame)
	assert.InDelta(t, 0.5, *got[0].AvgGoalsPerGame, 1e-9)

	q := db.last()
	assert.NotContains(t, q.query, name)
	assert.Equal(t, []any{name, 2015}, q.args)
	assert.Contains(t, q.query, "WHERE p.name = $1 AND g.season = $2")
	assert.Contains(t, q.query, "ORDER BY COUNT(*) DESC, team_id ASC")
	assert.Contains(t, q.query, "NULLIF(st.num_shots, 0)")
}

func TestPlayerReportRepository_CountShots(t *testing.T) {
	db := &fakeQuerier{fill: func(dest any) { *dest.(*int64) = 42 }}
	repo := NewPlayerReportRepository(db)

	got, err := repo.CountShots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
	assert.Equal(t, "SELECT COUNT(*) FROM shots", db.last().query)
}

func TestPlayerReportRepository_WrapsQueryError(t *testing.T) {
	boom := errors.New("boom")
	db := &fakeQuerier{errs: []error{boom}}
	repo := NewPlayerReportRepository(db)

	_, err := repo.ListTopScorers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
