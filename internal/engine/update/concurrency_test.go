package update_test

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintsync/internal/core/domain"
)

// gatedServer blocks every configuration fetch until the gate closes and
// records how many fetches overlap. Every call returns distinct content.
type gatedServer struct {
	gate     chan struct{}
	calls    atomic.Int32
	inFlight atomic.Int32
	maxSeen  atomic.Int32

	mu     sync.Mutex
	served map[int32]*domain.ModuleConfiguration
}

func (g *gatedServer) fetch(ctx context.Context, key string) (*domain.ModuleConfiguration, error) {
	call := g.calls.Add(1)
	n := g.inFlight.Add(1)
	defer g.inFlight.Add(-1)
	for {
		m := g.maxSeen.Load()
		if n <= m || g.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}

	select {
	case <-g.gate:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	cfg := &domain.ModuleConfiguration{
		QualityProfilesByLanguage: map[string]string{"go": "qp-go"},
		Settings:                  map[string]string{"sonar.call": strconv.Itoa(int(call))},
		Project: domain.NewProjectConfiguration(
			domain.ModulePath{Key: key},
			domain.ModulePath{Key: key + ":gen" + strconv.Itoa(int(call)), Path: "gen" + strconv.Itoa(int(call))},
		),
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.served == nil {
		g.served = make(map[int32]*domain.ModuleConfiguration)
	}
	g.served[call] = cfg
	return cfg, nil
}

func TestModuleUpdater_SameKeyIsSerialized(t *testing.T) {
	h := newHarness(t)
	h.seedGlobal(t, "qp-go")

	var g *gatedServer

	synctest.Test(t, func(t *testing.T) {
		g = &gatedServer{gate: make(chan struct{})}
		u := h.updater(&fakeServer{config: g.fetch})

		var wg sync.WaitGroup
		errs := make([]error, 2)

		wg.Go(func() { errs[0] = u.Update(context.Background(), "proj") })
		synctest.Wait()
		require.Equal(t, int32(1), g.calls.Load())

		wg.Go(func() { errs[1] = u.Update(context.Background(), "proj") })
		synctest.Wait()
		assert.Equal(t, int32(1), g.calls.Load(), "second update must wait for the first")

		close(g.gate)
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		assert.Equal(t, int32(2), g.calls.Load())
		assert.Equal(t, int32(1), g.maxSeen.Load())
	})

	// The later writer wins and nothing of the first update survives.
	got, err := h.store.ReadModuleConfiguration("proj")
	require.NoError(t, err)
	assert.Equal(t, g.served[2], got)
	assert.NotEqual(t, g.served[1].Settings, got.Settings)
	_, stale := got.Project.PathOf("proj:gen1")
	assert.False(t, stale)
	assert.Empty(t, h.stagingLeftovers(t))
}

func TestModuleUpdater_DistinctKeysOverlap(t *testing.T) {
	h := newHarness(t)
	h.seedGlobal(t, "qp-go")

	synctest.Test(t, func(t *testing.T) {
		g := &gatedServer{gate: make(chan struct{})}
		u := h.updater(&fakeServer{config: g.fetch})

		var wg sync.WaitGroup
		wg.Go(func() { assert.NoError(t, u.Update(context.Background(), "a")) })
		wg.Go(func() { assert.NoError(t, u.Update(context.Background(), "b")) })
		synctest.Wait()

		assert.Equal(t, int32(2), g.inFlight.Load())

		close(g.gate)
		wg.Wait()
	})
}

func TestModuleUpdater_LockWaitIsCancellable(t *testing.T) {
	h := newHarness(t)
	h.seedGlobal(t, "qp-go")

	synctest.Test(t, func(t *testing.T) {
		g := &gatedServer{gate: make(chan struct{})}
		u := h.updater(&fakeServer{config: g.fetch})

		var wg sync.WaitGroup
		wg.Go(func() { assert.NoError(t, u.Update(context.Background(), "proj")) })
		synctest.Wait()

		ctx, cancel := context.WithCancel(context.Background())
		waitErr := make(chan error, 1)
		go func() { waitErr <- u.Update(ctx, "proj") }()
		synctest.Wait()

		cancel()
		err := <-waitErr
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "lock")
		assert.Equal(t, int32(1), g.calls.Load())

		close(g.gate)
		wg.Wait()
	})
}
