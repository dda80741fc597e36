package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositories_Integration(t *testing.T) {
	// setup test database
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, repos.Close())
	}()

	// test ping
	require.NoError(t, repos.Ping(context.Background()))

	t.Run("schedule operations", func(t *testing.T) {
		ctx := context.Background()

		// absent key reads as empty
		value, err := repos.Schedule.Get(ctx, "demo_plugin_nudge_time")
		require.NoError(t, err)
		assert.Empty(t, value)

		// set and read back
		err = repos.Schedule.Set(ctx, "demo_plugin_nudge_time", "1748779200")
		require.NoError(t, err)

		value, err = repos.Schedule.Get(ctx, "demo_plugin_nudge_time")
		require.NoError(t, err)
		assert.Equal(t, "1748779200", value)

		// last write wins
		err = repos.Schedule.Set(ctx, "demo_plugin_nudge_time", "1749988800")
		require.NoError(t, err)

		value, err = repos.Schedule.Get(ctx, "demo_plugin_nudge_time")
		require.NoError(t, err)
		assert.Equal(t, "1749988800", value)

		// distinct subject prefixes don't collide
		value, err = repos.Schedule.Get(ctx, "other_plugin_nudge_time")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("dismissal operations", func(t *testing.T) {
		ctx := context.Background()

		// absent flag reads as empty
		value, err := repos.Dismissal.Get(ctx, "v1", "demo_plugin_nudge_dismissed")
		require.NoError(t, err)
		assert.Empty(t, value)

		// set for one viewer
		err = repos.Dismissal.Set(ctx, "v1", "demo_plugin_nudge_dismissed", "1")
		require.NoError(t, err)

		value, err = repos.Dismissal.Get(ctx, "v1", "demo_plugin_nudge_dismissed")
		require.NoError(t, err)
		assert.Equal(t, "1", value)

		// other viewer unaffected
		value, err = repos.Dismissal.Get(ctx, "v2", "demo_plugin_nudge_dismissed")
		require.NoError(t, err)
		assert.Empty(t, value)

		// repeated set is safe
		err = repos.Dismissal.Set(ctx, "v1", "demo_plugin_nudge_dismissed", "1")
		require.NoError(t, err)
	})
}

func TestNewRepositories_DefaultDSN(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Config{DSN: "file:" + tmpDir + "/test.db?cache=shared&mode=rwc"}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, repos.Close())
	}()

	require.NoError(t, repos.Ping(context.Background()))
}
