package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/platform/resilience"
)

// Querier is the part of *sqlx.DB the report repositories use.
type Querier interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type ResilientQuerierConfig struct {
	QueryTimeout   time.Duration
	RetryBackoff   time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// ResilientQuerier bounds every statement with a timeout, retries it once on
// a transient connection failure, and fails fast while the breaker is open.
type ResilientQuerier struct {
	next    Querier
	timeout time.Duration
	retry   resilience.RetryPolicy
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func NewResilientQuerier(next Querier, cfg ResilientQuerierConfig, logger *logging.Logger) *ResilientQuerier {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if cfg.CircuitBreaker.OnStateChange == nil {
		cfg.CircuitBreaker.OnStateChange = func(from, to resilience.CircuitState) {
			logger.Warn("database circuit breaker changed state", "from", from, "to", to)
		}
	}

	return &ResilientQuerier{
		next:    next,
		timeout: timeout,
		retry: resilience.RetryPolicy{
			Attempts:  2,
			Backoff:   cfg.RetryBackoff,
			Retryable: IsTransient,
		},
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		logger:  logger,
	}
}

func (q *ResilientQuerier) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return q.run(ctx, func(ctx context.Context) error {
		return q.next.SelectContext(ctx, dest, query, args...)
	})
}

func (q *ResilientQuerier) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return q.run(ctx, func(ctx context.Context) error {
		return q.next.GetContext(ctx, dest, query, args...)
	})
}

func (q *ResilientQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	err := q.run(ctx, func(ctx context.Context) error {
		var err error
		result, err = q.next.ExecContext(ctx, query, args...)
		return err
	})
	return result, err
}

func (q *ResilientQuerier) run(ctx context.Context, fn func(context.Context) error) error {
	attempt := 0
	err := q.breaker.Execute(func() error {
		return resilience.Retry(ctx, q.retry, func(ctx context.Context) error {
			attempt++
			if attempt > 1 {
				q.logger.WarnContext(ctx, "retrying query after transient failure", "attempt", attempt)
			}

			queryCtx, cancel := context.WithTimeout(ctx, q.timeout)
			defer cancel()
			return classify(queryCtx, fn(queryCtx))
		})
	}, countsAgainstBreaker)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		q.logger.WarnContext(ctx, "database circuit breaker rejected query", "state", q.breaker.State())
		return fmt.Errorf("database is temporarily unavailable: %w", err)
	}
	return err
}

func countsAgainstBreaker(err error) bool {
	return IsTransient(err) || IsTimeout(err)
}
