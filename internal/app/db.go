package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/soccer-stats/internal/config"
	"github.com/riskibarqy/soccer-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/platform/resilience"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// OpenDB opens the traced connection pool and checks it once.
func OpenDB(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dsn := parseDSN(cfg.DBURL)
	dbName := dsn.dbName()
	traceOpts := []otelsql.Option{
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(traceQuery),
	}

	db, err := otelsqlx.Open("postgres", dsn.withApplicationName(cfg.ServiceName), traceOpts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithAttributes(attribute.String("db.system", "postgresql")))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		// The pool reconnects lazily; reports degrade until it does.
		logger.WarnContext(ctx, "postgres ping failed, continuing", "db_name", dbName, "error", err)
	} else {
		logger.InfoContext(ctx, "postgres connected", "db_name", dbName, "max_open_conns", cfg.DBMaxOpenConns)
	}

	return db, nil
}

func newResilientQuerier(db postgres.Querier, cfg config.Config, logger *logging.Logger) *postgres.ResilientQuerier {
	return postgres.NewResilientQuerier(db, postgres.ResilientQuerierConfig{
		QueryTimeout: cfg.DBQueryTimeout,
		RetryBackoff: cfg.DBRetryBackoff,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		},
	}, logger)
}
