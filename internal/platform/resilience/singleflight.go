package resilience

import (
	"context"
	"fmt"
	"sync"
)

// Flight collapses concurrent calls that share a key into one execution.
// The zero value is ready to use.
type Flight[T any] struct {
	mu       sync.Mutex
	inflight map[string]*flightCall[T]
}

type flightCall[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Do runs fn at most once per key among overlapping callers. fn receives a
// context that keeps ctx's values but not its cancellation, so the caller
// that started the flight can give up without failing the others. Every
// caller, the starter included, stops waiting when its own ctx ends.
// shared is true when the result came from a flight another caller started.
func (f *Flight[T]) Do(ctx context.Context, key string, fn func(context.Context) (T, error)) (v T, shared bool, err error) {
	f.mu.Lock()
	if f.inflight == nil {
		f.inflight = make(map[string]*flightCall[T])
	}
	c, shared := f.inflight[key]
	if !shared {
		c = &flightCall[T]{done: make(chan struct{})}
		f.inflight[key] = c
		go f.run(context.WithoutCancel(ctx), key, c, fn)
	}
	f.mu.Unlock()

	select {
	case <-c.done:
		return c.val, shared, c.err
	case <-ctx.Done():
		var zero T
		return zero, shared, ctx.Err()
	}
}

func (f *Flight[T]) run(ctx context.Context, key string, c *flightCall[T], fn func(context.Context) (T, error)) {
	defer func() {
		if r := recover(); r != nil {
			c.err = fmt.Errorf("flight %q panicked: %v", key, r)
		}
		f.mu.Lock()
		delete(f.inflight, key)
		f.mu.Unlock()
		close(c.done)
	}()
	c.val, c.err = fn(ctx)
}
