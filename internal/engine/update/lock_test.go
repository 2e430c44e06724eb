package update

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLock_ReleasesEntries(t *testing.T) {
	l := newKeyLock()

	release, err := l.acquire(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 1, l.size())

	release()
	release()
	assert.Equal(t, 0, l.size())
}

func TestKeyLock_WaiterKeepsEntry(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := newKeyLock()

		release, err := l.acquire(context.Background(), "a")
		require.NoError(t, err)

		acquired := make(chan func())
		go func() {
			r, err := l.acquire(context.Background(), "a")
			assert.NoError(t, err)
			acquired <- r
		}()
		synctest.Wait()

		release()
		assert.Equal(t, 1, l.size(), "waiter still holds a reference")

		second := <-acquired
		second()
		assert.Equal(t, 0, l.size())
	})
}

func TestKeyLock_CancelledWaiterDropsReference(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := newKeyLock()

		release, err := l.acquire(context.Background(), "a")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error)
		go func() {
			_, err := l.acquire(ctx, "a")
			done <- err
		}()
		synctest.Wait()

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)

		release()
		assert.Equal(t, 0, l.size())
	})
}
