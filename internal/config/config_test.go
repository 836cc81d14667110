package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	m, err := NewManager()
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite", cfg.History.Backend)
	assert.Equal(t, "./data/history.db", cfg.History.SQLitePath)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 1024, cfg.Cache.LRUSize)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestNewManagerEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("DISEASE_RISK_SERVER_PORT", "9090")
	t.Setenv("DISEASE_RISK_HISTORY_BACKEND", "postgres")

	m, err := NewManager()
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.History.Backend)
}

func TestNewManagerRejectsUnknownBackend(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("DISEASE_RISK_HISTORY_BACKEND", "cassandra")

	_, err := NewManager()
	assert.Error(t, err)
}
