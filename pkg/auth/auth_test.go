package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_HasLevel(t *testing.T) {
	svc := New(Config{Levels: map[string][]string{
		"v1": {"admin", "manage"},
		"v2": {"editor"},
	}})

	assert.True(t, svc.HasLevel("v1", "admin"))
	assert.True(t, svc.HasLevel("v1", "manage"))
	assert.False(t, svc.HasLevel("v2", "admin"))
	assert.False(t, svc.HasLevel("unknown", "admin"))
}

func TestService_ViewerFromToken(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})

	token, err := svc.MakeToken("v1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/nudges/demo-plugin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, "v1", svc.Viewer(req))
}

func TestService_ViewerRejectsBadToken(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})
	other := New(Config{Secret: "other-secret"})

	token, err := other.MakeToken("v1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Empty(t, svc.Viewer(req), "token signed with another secret must be rejected")

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	assert.Empty(t, svc.Viewer(req))

	req = httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, svc.Viewer(req), "no credentials resolves to no viewer")
}

func TestService_ViewerRejectsExpiredToken(t *testing.T) {
	svc := New(Config{Secret: "test-secret"})

	token, err := svc.MakeToken("v1", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Empty(t, svc.Viewer(req))
}

func TestService_DebugHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Nudger-Viewer", "v1")

	svc := New(Config{Secret: "test-secret", DebugHeader: true})
	assert.Equal(t, "v1", svc.Viewer(req))

	svc = New(Config{Secret: "test-secret"})
	assert.Empty(t, svc.Viewer(req), "debug header ignored unless enabled")
}
