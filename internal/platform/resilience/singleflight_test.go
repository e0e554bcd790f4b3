package resilience

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlight_CollapsesConcurrentCalls(t *testing.T) {
	var f Flight[string]
	var runs atomic.Int32
	var sharedCount atomic.Int32

	const callers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, shared, err := f.Do(context.Background(), "top_scorers", func(context.Context) (string, error) {
				runs.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil || v != "ok" {
				t.Errorf("unexpected result %q, %v", v, err)
			}
			if shared {
				sharedCount.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, int32(callers-1), sharedCount.Load())
}

func TestFlight_StarterCancelDoesNotFailWaiters(t *testing.T) {
	var f Flight[int]
	release := make(chan struct{})
	started := make(chan struct{})

	starterCtx, cancelStarter := context.WithCancel(context.Background())
	starterErr := make(chan error, 1)
	go func() {
		_, _, err := f.Do(starterCtx, "clutch", func(ctx context.Context) (int, error) {
			close(started)
			<-release
			return 7, ctx.Err()
		})
		starterErr <- err
	}()
	<-started

	cancelStarter()
	require.ErrorIs(t, <-starterErr, context.Canceled)

	waiterDone := make(chan struct{})
	var (
		got    int
		shared bool
		err    error
	)
	go func() {
		defer close(waiterDone)
		got, shared, err = f.Do(context.Background(), "clutch", func(context.Context) (int, error) {
			t.Errorf("waiter must join the running flight")
			return 0, nil
		})
	}()
	// give the waiter time to join before the flight finishes
	time.Sleep(10 * time.Millisecond)
	close(release)
	<-waiterDone

	require.NoError(t, err)
	assert.True(t, shared)
	assert.Equal(t, 7, got)
}

func TestFlight_WaiterHonoursOwnCancel(t *testing.T) {
	var f Flight[int]
	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})

	go func() {
		_, _, _ = f.Do(context.Background(), "slow", func(context.Context) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, shared, err := f.Do(ctx, "slow", func(context.Context) (int, error) {
		t.Errorf("waiter must not start its own flight")
		return 0, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, shared)
}

func TestFlight_PanicBecomesError(t *testing.T) {
	var f Flight[int]
	_, _, err := f.Do(context.Background(), "boom", func(context.Context) (int, error) {
		panic("bad row")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad row")

	v, _, err := f.Do(context.Background(), "boom", func(context.Context) (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}
