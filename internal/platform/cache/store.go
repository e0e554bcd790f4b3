package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/soccer-stats/internal/platform/resilience"
)

// Remote is an optional shared tier consulted on a local miss. Failures are
// treated as misses.
type Remote interface {
	Fetch(ctx context.Context, key string, dst any) bool
	Store(ctx context.Context, key string, value any, ttl time.Duration)
}

type entry struct {
	value     any
	expiresAt time.Time
}

func (e entry) live(now time.Time) bool {
	return e.expiresAt.IsZero() || e.expiresAt.After(now)
}

// DefaultMaxEntries bounds a store built without WithMaxEntries.
const DefaultMaxEntries = 10000

// sweepEvery is how many inserts of new keys pass between expiry sweeps.
const sweepEvery = 256

// Store is a process-local TTL cache with an optional Remote behind it.
// Concurrent misses on one key share a single load.
type Store struct {
	ttl        time.Duration
	maxEntries int
	remote     Remote
	now        func() time.Time
	flight     resilience.Flight[any]

	mu      sync.RWMutex
	entries map[string]entry
	inserts int
}

type Option func(*Store)

func WithRemote(remote Remote) Option {
	return func(s *Store) {
		s.remote = remote
	}
}

// WithMaxEntries caps the number of keys held locally. n <= 0 keeps the
// default.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// NewStore keeps entries for ttl; zero or negative ttl never expires them.
func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		ttl:        ttl,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
		entries:    make(map[string]entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.live(s.now()) {
		s.mu.Lock()
		if cur, still := s.entries[key]; still && !cur.live(s.now()) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}
	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[key]; !exists {
		s.inserts++
		if s.inserts%sweepEvery == 0 || len(s.entries) >= s.maxEntries {
			s.sweepLocked(s.now())
		}
		if len(s.entries) >= s.maxEntries {
			s.evictLocked(len(s.entries) - s.maxEntries + 1 + s.maxEntries/8)
		}
	}
	s.entries[key] = e
}

// Sweep drops every expired entry and reports how many went.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *Store) sweepLocked(now time.Time) int {
	removed := 0
	for key, e := range s.entries {
		if !e.live(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// evictLocked drops n live entries in map order. Freeing a batch keeps a
// full store from sweeping on every insert.
func (s *Store) evictLocked(n int) {
	for key := range s.entries {
		if n <= 0 {
			return
		}
		delete(s.entries, key)
		n--
	}
}

// Len counts entries, expired ones included until the next sweep.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Load returns the cached value for key, filling it from the remote tier or
// loader on a miss. Errors are never cached. A nil store or empty key calls
// loader directly.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if s == nil || key == "" {
		return loader(ctx)
	}
	if v, ok := s.Get(ctx, key); ok {
		return typed[T](key, v)
	}

	v, _, err := s.flight.Do(ctx, key, func(ctx context.Context) (any, error) {
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		if s.remote != nil {
			var hit T
			if s.remote.Fetch(ctx, key, &hit) {
				s.Set(ctx, key, hit)
				return hit, nil
			}
		}

		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, loaded)
		if s.remote != nil {
			s.remote.Store(ctx, key, loaded, s.ttl)
		}
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}
	return typed[T](key, v)
}

func typed[T any](key string, v any) (T, error) {
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache entry %q holds %T", key, v)
	}
	return out, nil
}
