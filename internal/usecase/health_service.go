package usecase

import (
	"context"
	"errors"
	"time"
)

const defaultReadinessTimeout = 2 * time.Second

// HealthCheck probes one dependency the reports need.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthService struct {
	checks  []HealthCheck
	timeout time.Duration
}

func NewHealthService(checks ...HealthCheck) *HealthService {
	return &HealthService{checks: checks, timeout: defaultReadinessTimeout}
}

// Ready runs every check and reports all failures, each wrapped in
// ErrDependencyUnavailable.
func (s *HealthService) Ready(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.HealthService.Ready")
	defer span.End()

	if s == nil || len(s.checks) == 0 {
		return dependencyUnavailable("readiness", errors.New("no checks configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var errs []error
	for _, check := range s.checks {
		if err := check.Ping(ctx); err != nil {
			errs = append(errs, dependencyUnavailable(check.Name, err))
		}
	}
	if len(errs) > 0 {
		return spanError(span, "readiness", errors.Join(errs...))
	}
	return nil
}
