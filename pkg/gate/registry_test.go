package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/nudger/pkg/domain"
)

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	reg := NewRegistry()

	first := reg.Register("demo-plugin", "Demo Plugin", SubjectConfig{SnoozeInterval: 3 * 24 * time.Hour})
	second := reg.Register("demo-plugin", "Other Name", SubjectConfig{SnoozeInterval: time.Hour})

	assert.Same(t, first, second, "repeated registration returns the original instance")
	assert.Equal(t, "Demo Plugin", second.Name)
	assert.Equal(t, 3*24*time.Hour, second.SnoozeInterval)
}

func TestRegistry_Defaults(t *testing.T) {
	reg := NewRegistry()
	subj := reg.Register("demo-plugin", "Demo Plugin", SubjectConfig{})

	assert.Equal(t, "demo_plugin", subj.Prefix, "prefix derived from slug")
	assert.Equal(t, domain.DefaultSnoozeInterval, subj.SnoozeInterval)
	assert.Equal(t, domain.DefaultLevel, subj.RequiredLevel)
	assert.Contains(t, subj.Message, "Demo Plugin")
	assert.Equal(t, "demo-plugin", subj.TextDomain)
	assert.Empty(t, subj.Screens, "unrestricted by default")
	assert.Empty(t, subj.LaterLabel, "labels have no defaults, empty suppresses the action")
}

func TestRegistry_PrefixOverride(t *testing.T) {
	reg := NewRegistry()
	subj := reg.Register("demo-plugin", "Demo Plugin", SubjectConfig{Prefix: "custom"})
	assert.Equal(t, "custom", subj.Prefix)
}

func TestRegistry_InertSubject(t *testing.T) {
	reg := NewRegistry()

	subj := reg.Register("", "No Slug", SubjectConfig{})
	assert.False(t, subj.Valid())

	subj = reg.Register("no-name", "", SubjectConfig{})
	assert.False(t, subj.Valid())
}

func TestRegistry_GetAndAll(t *testing.T) {
	reg := NewRegistry()
	reg.Register("zeta", "Zeta", SubjectConfig{})
	reg.Register("alpha", "Alpha", SubjectConfig{})

	subj, ok := reg.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "Alpha", subj.Name)

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Slug, "sorted by slug")
	assert.Equal(t, "zeta", all[1].Slug)
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	reg := NewRegistry()

	var g errgroup.Group
	results := make([]*domain.Subject, 16)
	for i := range results {
		g.Go(func() error {
			results[i] = reg.Register("demo-plugin", "Demo Plugin", SubjectConfig{})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < len(results); i++ {
		assert.Same(t, results[0], results[i], "all concurrent registrations get the same instance")
	}
}
