package resilience

import (
	"context"
	"time"
)

// Retry runs fn until it succeeds, the policy gives up, or ctx ends. The last
// error from fn is returned.
func Retry(ctx context.Context, policy RetryPolicy, fn func(context.Context) error) error {
	limit := policy.attempts()

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(ctx); err == nil || attempt >= limit || !policy.shouldRetry(err) {
			return err
		}
		if !wait(ctx, policy.Backoff*time.Duration(attempt)) {
			return err
		}
	}
}

func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
