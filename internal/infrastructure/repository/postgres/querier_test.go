package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/platform/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResilientQuerier(next Querier, breaker resilience.CircuitBreakerConfig) *ResilientQuerier {
	return NewResilientQuerier(next, ResilientQuerierConfig{
		QueryTimeout:   time.Second,
		CircuitBreaker: breaker,
	}, logging.NewNop())
}

func TestResilientQuerier_RetriesTransientFailureOnce(t *testing.T) {
	next := &fakeQuerier{
		errs: []error{&pq.Error{Code: "08006", Message: "connection failure"}},
		fill: func(dest any) { *dest.(*int64) = 7 },
	}
	q := newTestResilientQuerier(next, resilience.CircuitBreakerConfig{})

	var count int64
	err := q.GetContext(context.Background(), &count, "SELECT COUNT(*) FROM shots")
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.Len(t, next.calls, 2)
}

func TestResilientQuerier_GivesUpAfterSecondTransientFailure(t *testing.T) {
	next := &fakeQuerier{errs: []error{driver.ErrBadConn, driver.ErrBadConn, nil}}
	q := newTestResilientQuerier(next, resilience.CircuitBreakerConfig{})

	var rows []topScorerRow
	err := q.SelectContext(context.Background(), &rows, "SELECT 1")
	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.Len(t, next.calls, 2)
}

func TestResilientQuerier_DoesNotRetrySyntaxError(t *testing.T) {
	syntax := &pq.Error{Code: "42601", Message: "syntax error"}
	next := &fakeQuerier{errs: []error{syntax}}
	q := newTestResilientQuerier(next, resilience.CircuitBreakerConfig{})

	var rows []topScorerRow
	err := q.SelectContext(context.Background(), &rows, "SELEC 1")
	require.Error(t, err)
	assert.False(t, IsTransient(err))
	assert.Len(t, next.calls, 1)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("42601"), pqErr.Code)
}

func TestResilientQuerier_OpensBreakerOnRepeatedTransientFailures(t *testing.T) {
	next := &fakeQuerier{errs: []error{driver.ErrBadConn, driver.ErrBadConn, driver.ErrBadConn, driver.ErrBadConn}}
	q := newTestResilientQuerier(next, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	ctx := context.Background()
	var rows []topScorerRow
	require.Error(t, q.SelectContext(ctx, &rows, "SELECT 1"))
	require.Error(t, q.SelectContext(ctx, &rows, "SELECT 1"))

	err := q.SelectContext(ctx, &rows, "SELECT 1")
	require.Error(t, err)
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Len(t, next.calls, 4)
}

func TestResilientQuerier_SyntaxErrorsDoNotTripBreaker(t *testing.T) {
	syntax := &pq.Error{Code: "42601"}
	next := &fakeQuerier{errs: []error{syntax, syntax, syntax}}
	q := newTestResilientQuerier(next, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	ctx := context.Background()
	var rows []topScorerRow
	for i := 0; i < 3; i++ {
		err := q.SelectContext(ctx, &rows, "SELEC 1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, resilience.ErrCircuitOpen)
	}
	assert.Len(t, next.calls, 3)
}

type slowQuerier struct {
	fakeQuerier
}

func (s *slowQuerier) SelectContext(ctx context.Context, _ any, _ string, _ ...any) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestResilientQuerier_TimesOut(t *testing.T) {
	q := NewResilientQuerier(&slowQuerier{}, ResilientQuerierConfig{QueryTimeout: 20 * time.Millisecond}, logging.NewNop())

	var rows []topScorerRow
	err := q.SelectContext(context.Background(), &rows, "SELECT pg_sleep(10)")
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.False(t, IsTransient(err))
}

func TestResilientQuerier_ExecReturnsResult(t *testing.T) {
	next := &fakeQuerier{}
	q := newTestResilientQuerier(next, resilience.CircuitBreakerConfig{})

	res, err := q.ExecContext(context.Background(), "REFRESH MATERIALIZED VIEW CONCURRENTLY team_roster")
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
