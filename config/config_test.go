package config_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "reference", cfg.Payroll.Scenario)
	assert.Empty(t, cfg.Payroll.RosterPath)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PAYROLL_SERVER_PORT", "9090")
	t.Setenv("PAYROLL_LOG_LEVEL", "debug")
	t.Setenv("PAYROLL_SCENARIO", "empty")
	t.Setenv("PAYROLL_ROSTER_PATH", "/tmp/roster.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "empty", cfg.Payroll.Scenario)
	assert.Equal(t, "/tmp/roster.json", cfg.Payroll.RosterPath)
	assert.Equal(t, zerolog.DebugLevel, cfg.Logger().GetLevel())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PAYROLL_SERVER_PORT", "not-a-number")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("PAYROLL_LOG_LEVEL", "loud")
	_, err := config.Load()
	assert.Error(t, err)
}
