package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Subjects = []SubjectConfig{{Slug: "demo-plugin", Name: "Demo Plugin"}}

	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
}

func TestVerifyAgainstEmbeddedSchema_MissingFields(t *testing.T) {
	cfg := &Config{}
	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.listen")

	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Subjects = []SubjectConfig{{Slug: "demo-plugin"}} // no name, inert
	err = VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inert")
}
