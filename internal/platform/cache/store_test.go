package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ConcurrentMissesShareOneLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := Load(context.Background(), store, "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}

	// served from memory afterwards
	if _, err := Load(context.Background(), store, "same-key", loader); err != nil {
		t.Fatalf("cached Load error: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times after cache fill, want 1", got)
	}
}

func TestLoad_TypeMismatchIsError(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "k", "not a number")

	_, err := Load(context.Background(), store, "k", func(context.Context) (int, error) { return 1, nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holds string")
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_GetExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted on read")
	}
}

func TestStore_SweepDropsExpiredKeysNeverRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		store.Set(ctx, fmt.Sprintf("old:%d", i), i)
	}
	now = now.Add(30 * time.Second)
	store.Set(ctx, "fresh", "v")

	now = now.Add(45 * time.Second)
	if removed := store.Sweep(); removed != 10 {
		t.Fatalf("expected 10 expired keys swept, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected only the fresh key to remain, got %d", store.Len())
	}
	if _, ok := store.Get(ctx, "fresh"); !ok {
		t.Fatalf("expected fresh key to survive the sweep")
	}
}

func TestStore_SetSweepsExpiredKeysPeriodically(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute, WithMaxEntries(100000))
	store.now = func() time.Time { return now }

	for i := 0; i < sweepEvery-1; i++ {
		store.Set(ctx, fmt.Sprintf("a:%d", i), i)
	}
	now = now.Add(2 * time.Minute)
	store.Set(ctx, "b", "v")

	if store.Len() != 1 {
		t.Fatalf("expected expired keys dropped by the insert sweep, got %d entries", store.Len())
	}
}

func TestStore_MaxEntriesBoundsSize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cases := []struct {
		name string
		ttl  time.Duration
	}{
		{name: "expiring entries", ttl: time.Hour},
		{name: "entries that never expire", ttl: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewStore(tc.ttl, WithMaxEntries(50))
			for i := 0; i < 1000; i++ {
				store.Set(ctx, fmt.Sprintf("k:%d", i), i)
				if store.Len() > 50 {
					t.Fatalf("store grew to %d entries after %d sets", store.Len(), i+1)
				}
			}
			if _, ok := store.Get(ctx, "k:999"); !ok {
				t.Fatalf("expected the newest key to be cached")
			}
		})
	}
}

func TestStore_OverwriteAtCapacityKeepsOtherKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Hour, WithMaxEntries(3))
	store.Set(ctx, "a", 1)
	store.Set(ctx, "b", 2)
	store.Set(ctx, "c", 3)
	store.Set(ctx, "b", 20)

	if store.Len() != 3 {
		t.Fatalf("expected overwrite to keep 3 entries, got %d", store.Len())
	}
	v, ok := store.Get(ctx, "b")
	if !ok || v != 20 {
		t.Fatalf("expected overwritten value, got %v (hit=%v)", v, ok)
	}
}

type leagueAverage struct {
	LeagueName string
	AvgGoals   *float64
}

func TestLoad_TypedValueAndErrorsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	failing := errors.New("connection refused")

	_, err := Load(context.Background(), store, "league:top", func(context.Context) ([]leagueAverage, error) {
		calls.Add(1)
		return nil, failing
	})
	require.ErrorIs(t, err, failing)

	avg := 2.75
	got, err := Load(context.Background(), store, "league:top", func(context.Context) ([]leagueAverage, error) {
		calls.Add(1)
		return []leagueAverage{{LeagueName: "EPL", AvgGoals: &avg}}, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "EPL", got[0].LeagueName)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoad_NilStoreCallsLoader(t *testing.T) {
	t.Parallel()

	got, err := Load(context.Background(), nil, "k", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

type memoryRemote struct {
	mu    sync.Mutex
	items map[string][]byte
}

func (r *memoryRemote) Fetch(_ context.Context, key string, dst any) bool {
	r.mu.Lock()
	raw, ok := r.items[key]
	r.mu.Unlock()
	if !ok {
		return false
	}
	return Decode(raw, dst) == nil
}

func (r *memoryRemote) Store(_ context.Context, key string, value any, _ time.Duration) {
	raw, err := Encode(value)
	if err != nil {
		return
	}
	r.mu.Lock()
	r.items[key] = raw
	r.mu.Unlock()
}

func TestLoad_SharesThroughRemote(t *testing.T) {
	t.Parallel()

	remote := &memoryRemote{items: map[string][]byte{}}
	first := NewStore(time.Minute, WithRemote(remote))
	second := NewStore(time.Minute, WithRemote(remote))

	avg := 1.5
	_, err := Load(context.Background(), first, "league:offense", func(context.Context) ([]leagueAverage, error) {
		return []leagueAverage{{LeagueName: "La Liga", AvgGoals: &avg}, {LeagueName: "Ligue 1"}}, nil
	})
	require.NoError(t, err)

	got, err := Load(context.Background(), second, "league:offense", func(context.Context) ([]leagueAverage, error) {
		t.Errorf("second instance should be served by the remote tier")
		return nil, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].AvgGoals)
	assert.InDelta(t, 1.5, *got[0].AvgGoals, 1e-9)
	assert.Nil(t, got[1].AvgGoals)
}

func TestRedisRemote_RoundTrip(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	remote, err := NewRedisRemote(ctx, redisURL, "soccerstats-test:", nil)
	require.NoError(t, err)
	defer remote.Close()

	avg := 3.1
	remote.Store(ctx, "roundtrip", []leagueAverage{{LeagueName: "Serie A", AvgGoals: &avg}}, time.Minute)

	var got []leagueAverage
	require.True(t, remote.Fetch(ctx, "roundtrip", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Serie A", got[0].LeagueName)
	assert.False(t, remote.Fetch(ctx, "missing", &got))
}
