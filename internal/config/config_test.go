package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 60*time.Second, cfg.NotifyTick)
	assert.True(t, cfg.NotifyEnabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AGENDA_DB", "/tmp/custom.db")
	t.Setenv("AGENDA_NOTIFY", "false")
	t.Setenv("AGENDA_TICK_SECONDS", "5")
	t.Setenv("AGENDA_LOG", "/tmp/agenda.log")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.False(t, cfg.NotifyEnabled)
	assert.Equal(t, 5*time.Second, cfg.NotifyTick)
	assert.Equal(t, "/tmp/agenda.log", cfg.LogPath)
}

func TestLoadConfig_IgnoresInvalidTick(t *testing.T) {
	t.Setenv("AGENDA_TICK_SECONDS", "zero")
	cfg := LoadConfig()
	assert.Equal(t, 60*time.Second, cfg.NotifyTick)

	t.Setenv("AGENDA_TICK_SECONDS", "-3")
	cfg = LoadConfig()
	assert.Equal(t, 60*time.Second, cfg.NotifyTick)
}
