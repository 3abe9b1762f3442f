//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_Acquire(t *testing.T) {
	t.Parallel()

	t.Run("recycles after max pages", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer manager.Close()

		first, release, err := manager.Acquire()
		require.NoError(t, err)
		release()
		firstPID := manager.LauncherPID()
		_, release, err = manager.Acquire()
		require.NoError(t, err)
		release()

		third, release, err := manager.Acquire()
		require.NoError(t, err)
		defer release()

		assert.NotSame(t, first, third)
		assert.NotEqual(t, firstPID, manager.LauncherPID())
	})

	t.Run("keeps a replaced browser open while it is leased", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(1))
		require.NoError(t, err)
		defer manager.Close()

		first, releaseFirst, err := manager.Acquire()
		require.NoError(t, err)

		second, releaseSecond, err := manager.Acquire()
		require.NoError(t, err)
		defer releaseSecond()
		require.NotSame(t, first, second)

		_, err = first.Pages()
		assert.NoError(t, err, "leased browser must stay usable after recycling")

		releaseFirst()
		releaseFirst()
	})

	t.Run("keeps the browser below max pages", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(5))
		require.NoError(t, err)
		defer manager.Close()

		first, release, err := manager.Acquire()
		require.NoError(t, err)
		release()

		second, release, err := manager.Acquire()
		require.NoError(t, err)
		release()

		assert.Same(t, first, second)
	})
}

func TestBrowserManager_Close(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)

	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close())
	assert.Zero(t, manager.LauncherPID())

	_, _, err = manager.Acquire()
	assert.Equal(t, prodspan.EINVALID, prodspan.ErrorCode(err))
}
