package observability

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/soccer-stats/internal/config"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
)

// Telemetry owns the process-wide tracing, profiling and debug endpoints.
// Parts that are disabled in config are simply absent.
type Telemetry struct {
	logger *logging.Logger
	stops  []namedStop
}

type namedStop struct {
	name string
	stop func(context.Context) error
}

// Start brings up tracing first so the profilers' own startup is traced.
// On error everything already started is stopped again.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	steps := []struct {
		name  string
		start func(config.Config, *logging.Logger) (func(context.Context) error, error)
	}{
		{"uptrace", startUptrace},
		{"pyroscope", startPyroscope},
		{"pprof", startPprof},
	}
	for _, step := range steps {
		stop, err := step.start(cfg, logger)
		if err != nil {
			_ = t.Shutdown(ctx)
			return nil, crerr.Wrapf(err, "start %s", step.name)
		}
		if stop != nil {
			t.stops = append(t.stops, namedStop{name: step.name, stop: stop})
		}
	}
	return t, nil
}

// Shutdown stops components in reverse start order and reports every
// failure, not just the first.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var errs error
	for i := len(t.stops) - 1; i >= 0; i-- {
		s := t.stops[i]
		if err := s.stop(ctx); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrapf(err, "stop %s", s.name))
			continue
		}
		t.logger.Debug("telemetry component stopped", "component", s.name)
	}
	t.stops = nil
	return errs
}
