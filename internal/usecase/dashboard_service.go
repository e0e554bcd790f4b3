package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/soccer-stats/internal/domain/playerreport"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// Home dashboard panels.
const (
	PanelTopScorers      = "top_scorers"
	PanelMostInfluential = "most_influential_players"
	PanelClutchPlayers   = "clutch_players"
)

// HomeDashboard holds the three home page panels. A panel that failed is
// empty and named in Degraded.
type HomeDashboard struct {
	TopScorers      []playerreport.TopScorer
	MostInfluential []playerreport.InfluentialPlayer
	ClutchPlayers   []playerreport.ClutchPlayer
	Degraded        []string
}

type dashboardPlayerReports interface {
	TopScorers(ctx context.Context) ([]playerreport.TopScorer, error)
	MostInfluential(ctx context.Context, limit int) ([]playerreport.InfluentialPlayer, error)
	ClutchPlayers(ctx context.Context, limit int) ([]playerreport.ClutchPlayer, error)
}

type DashboardService struct {
	players dashboardPlayerReports
	logger  *logging.Logger
}

func NewDashboardService(players dashboardPlayerReports, logger *logging.Logger) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardService{players: players, logger: logger}
}

// Home loads the panels concurrently. It never fails as a whole.
func (s *DashboardService) Home(ctx context.Context) HomeDashboard {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Home")
	defer span.End()

	out := HomeDashboard{
		TopScorers:      []playerreport.TopScorer{},
		MostInfluential: []playerreport.InfluentialPlayer{},
		ClutchPlayers:   []playerreport.ClutchPlayer{},
	}

	var mu sync.Mutex
	fail := func(panel string, err error) {
		s.logger.WarnContext(ctx, "dashboard panel degraded", "panel", panel, "error", err)
		mu.Lock()
		out.Degraded = append(out.Degraded, panel)
		mu.Unlock()
	}

	// panel runs load and marks name degraded on an error or a panic.
	panel := func(name string, load func() error) func() {
		return func() {
			defer func() {
				if r := recover(); r != nil {
					fail(name, fmt.Errorf("panic: %v", r))
				}
			}()
			if err := load(); err != nil {
				fail(name, err)
			}
		}
	}

	var wg conc.WaitGroup
	wg.Go(panel(PanelTopScorers, func() error {
		items, err := s.players.TopScorers(ctx)
		if err != nil {
			return err
		}
		out.TopScorers = items
		return nil
	}))
	wg.Go(panel(PanelMostInfluential, func() error {
		items, err := s.players.MostInfluential(ctx, playerreport.DefaultInfluentialLimit)
		if err != nil {
			return err
		}
		out.MostInfluential = items
		return nil
	}))
	wg.Go(panel(PanelClutchPlayers, func() error {
		items, err := s.players.ClutchPlayers(ctx, playerreport.DefaultClutchLimit)
		if err != nil {
			return err
		}
		out.ClutchPlayers = items
		return nil
	}))
	wg.Wait()

	sort.Strings(out.Degraded)
	return out
}
