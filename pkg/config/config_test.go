package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, 24*time.Hour, cfg.Exports.SignedURLTTL)
	assert.Equal(t, -360, cfg.Exports.PDFDateOffsetMinutes)
	assert.Equal(t, 1, cfg.Exports.Workers)
	assert.Equal(t, 16, cfg.Exports.QueueSize)
	assert.Equal(t, time.Hour, cfg.QA.CacheTTL)
	assert.False(t, cfg.QA.Enabled)
}

func TestLoadExportQueueFromEnv(t *testing.T) {
	t.Setenv("EXPORTS_WORKERS", "4")
	t.Setenv("EXPORTS_QUEUE_SIZE", "64")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Exports.Workers)
	assert.Equal(t, 64, cfg.Exports.QueueSize)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("not-a-duration", time.Minute))
	assert.Equal(t, 90*time.Second, parseDuration("90s", time.Minute))
}
