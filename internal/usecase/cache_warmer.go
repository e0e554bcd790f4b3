package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/soccer-stats/internal/domain/playerreport"
	"github.com/riskibarqy/soccer-stats/internal/domain/roster"
	"github.com/riskibarqy/soccer-stats/internal/domain/season"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/platform/metrics"
)

const defaultWarmWorkers = 4

type CacheWarmerConfig struct {
	Workers  int
	Interval time.Duration
}

// CacheWarmer loads the parameterless default reports so the first visitor
// does not pay for the expensive queries.
type CacheWarmer struct {
	players *PlayerReportService
	leagues *LeagueReportService
	rosters *RosterService
	metrics metrics.Recorder
	logger  *logging.Logger
	cfg     CacheWarmerConfig
}

type warmTask struct {
	report string
	run    func(context.Context) error
}

func NewCacheWarmer(
	players *PlayerReportService,
	leagues *LeagueReportService,
	rosters *RosterService,
	recorder metrics.Recorder,
	logger *logging.Logger,
	cfg CacheWarmerConfig,
) *CacheWarmer {
	if logger == nil {
		logger = logging.Default()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaultWarmWorkers
	}
	return &CacheWarmer{
		players: players,
		leagues: leagues,
		rosters: rosters,
		metrics: recorder,
		logger:  logger,
		cfg:     cfg,
	}
}

// Run warms once, then again every Interval until ctx is done. A zero
// Interval warms only once.
func (w *CacheWarmer) Run(ctx context.Context) {
	if err := w.WarmOnce(ctx); err != nil {
		w.logger.WarnContext(ctx, "cache warm finished with failures", "error", err)
	}
	if w.cfg.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.WarmOnce(ctx); err != nil {
				w.logger.WarnContext(ctx, "cache warm finished with failures", "error", err)
			}
		}
	}
}

// WarmOnce runs every warm task on the worker pool and joins their errors.
func (w *CacheWarmer) WarmOnce(ctx context.Context) error {
	tasks := w.tasks()

	pool, err := ants.NewPool(w.cfg.Workers)
	if err != nil {
		return fmt.Errorf("create warm pool: %w", err)
	}
	defer pool.Release()

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	start := time.Now()
	for _, task := range tasks {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			taskErr := task.run(ctx)
			w.metrics.ObserveCacheWarm(task.report, taskErr)
			if taskErr != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", task.report, taskErr))
				mu.Unlock()
			}
		}); err != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, fmt.Errorf("submit %s: %w", task.report, err))
			mu.Unlock()
		}
	}
	wg.Wait()

	w.logger.InfoContext(ctx, "cache warm completed",
		"tasks", len(tasks),
		"failed", len(errs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return errors.Join(errs...)
}

func (w *CacheWarmer) tasks() []warmTask {
	seasons := season.DefaultRange()
	rosterFilter := roster.Filter{Seasons: seasons}

	return []warmTask{
		{report: "top_scorers", run: func(ctx context.Context) error {
			_, err := w.players.TopScorers(ctx)
			return err
		}},
		{report: "most_influential_players", run: func(ctx context.Context) error {
			_, err := w.players.MostInfluential(ctx, playerreport.DefaultInfluentialLimit)
			return err
		}},
		{report: "most_influential_players_10", run: func(ctx context.Context) error {
			_, err := w.players.MostInfluential(ctx, 10)
			return err
		}},
		{report: "clutch_players", run: func(ctx context.Context) error {
			_, err := w.players.ClutchPlayers(ctx, playerreport.DefaultClutchLimit)
			return err
		}},
		{report: "top_leagues", run: func(ctx context.Context) error {
			_, err := w.leagues.TopLeagues(ctx, seasons)
			return err
		}},
		{report: "top_offensive_leagues", run: func(ctx context.Context) error {
			_, err := w.leagues.TopOffensiveLeagues(ctx, seasons)
			return err
		}},
		{report: "top_defensive_leagues", run: func(ctx context.Context) error {
			_, err := w.leagues.TopDefensiveLeagues(ctx, seasons)
			return err
		}},
		{report: "team_roster", run: func(ctx context.Context) error {
			_, err := w.rosters.TeamRoster(ctx, rosterFilter)
			return err
		}},
		{report: "roster_test", run: func(ctx context.Context) error {
			_, err := w.rosters.MaterializedRoster(ctx, rosterFilter)
			return err
		}},
	}
}
