package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/soccer-stats/internal/config"
	"github.com/riskibarqy/soccer-stats/internal/domain/leaguereport"
	"github.com/riskibarqy/soccer-stats/internal/domain/playerreport"
	"github.com/riskibarqy/soccer-stats/internal/domain/roster"
	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
	reportcache "github.com/riskibarqy/soccer-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/soccer-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/soccer-stats/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/soccer-stats/internal/platform/cache"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/platform/metrics"
	"github.com/riskibarqy/soccer-stats/internal/usecase"
)

const redisKeyPrefix = "soccer-stats:"

// Runtime is what cmd/api starts and stops. Warmer is nil when caching is
// disabled.
type Runtime struct {
	Server  *http.Server
	Warmer  *usecase.CacheWarmer
	closers []func() error
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	rt := &Runtime{}

	db, err := OpenDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, db.Close)

	querier := newResilientQuerier(db, cfg, logger)

	var (
		playerRepo playerreport.Repository = postgres.NewPlayerReportRepository(querier)
		leagueRepo leaguereport.Repository = postgres.NewLeagueReportRepository(querier)
		rosterRepo roster.Repository       = postgres.NewRosterRepository(querier)
		teamRepo   teamseason.Repository   = postgres.NewTeamSeasonRepository(querier)
	)

	if cfg.CacheEnabled {
		var opts []basecache.Option
		if cfg.RedisURL != "" {
			remote, err := basecache.NewRedisRemote(ctx, cfg.RedisURL, redisKeyPrefix, logger)
			if err != nil {
				logger.WarnContext(ctx, "redis unavailable, caching locally only", "error", err)
			} else {
				opts = append(opts, basecache.WithRemote(remote))
				rt.closers = append(rt.closers, remote.Close)
			}
		}
		opts = append(opts, basecache.WithMaxEntries(cfg.CacheMaxEntries))
		store := basecache.NewStore(cfg.CacheTTL, opts...)

		playerRepo = reportcache.NewPlayerReportRepository(playerRepo, store)
		leagueRepo = reportcache.NewLeagueReportRepository(leagueRepo, store)
		rosterRepo = reportcache.NewRosterRepository(rosterRepo, store)
		teamRepo = reportcache.NewTeamSeasonRepository(teamRepo, store)
	}

	var (
		recorder       metrics.Recorder = metrics.Nop{}
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		recorder = metrics.NewService()
		metricsHandler = metrics.NewHandler()
	}

	playerSvc := usecase.NewPlayerReportService(playerRepo)
	leagueSvc := usecase.NewLeagueReportService(leagueRepo)
	rosterSvc := usecase.NewRosterService(rosterRepo)
	teamSvc := usecase.NewTeamSeasonService(teamRepo)
	dashboardSvc := usecase.NewDashboardService(playerSvc, logger)

	if cfg.CacheEnabled {
		rt.Warmer = usecase.NewCacheWarmer(playerSvc, leagueSvc, rosterSvc, recorder, logger, usecase.CacheWarmerConfig{
			Workers:  cfg.CacheWarmWorkers,
			Interval: cfg.CacheWarmInterval,
		})
	}

	health := usecase.NewHealthService(usecase.HealthCheck{Name: "postgres", Ping: db.PingContext})
	handler := httpapi.NewHandler(playerSvc, leagueSvc, rosterSvc, teamSvc, dashboardSvc, health, recorder, logger)
	router := httpapi.NewRouter(handler, metricsHandler, logger, cfg.CORSAllowedOrigins)

	rt.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return rt, nil
}

// Close releases the pool and the redis client, newest first.
func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
