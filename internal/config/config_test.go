package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "GL Hackathon 2026", cfg.Event.Name)
	assert.Equal(t, 4, cfg.Event.MaxTeamSize)
	assert.Equal(t, 100, cfg.Event.MaxTeams)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "disable", cfg.Storage.Database.SSLMode)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EVENT_MAX_TEAM_SIZE", "6")
	t.Setenv("EVENT_MAX_TEAMS", "not-a-number")
	t.Setenv("STORAGE_BACKEND", "redis")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Event.MaxTeamSize)
	assert.Equal(t, 100, cfg.Event.MaxTeams, "bad int falls back to default")
	assert.Equal(t, "redis", cfg.Storage.Backend)
}
