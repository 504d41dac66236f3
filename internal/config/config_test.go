package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "dhankavach", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Empty(t, cfg.Server.APIKey)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "dhankavach:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)

	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, "DHANKAVACH_ALERTS", cfg.NATS.StreamName)

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)

	assert.Equal(t, "bidirectional", cfg.Risk.MatchPolicy)
	assert.Equal(t, "Family Member", cfg.Notification.DefaultNominee)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DHANKAVACH_SERVER_HTTP_PORT", "9090")
	t.Setenv("DHANKAVACH_RISK_MATCH_POLICY", "exact")
	t.Setenv("DHANKAVACH_REDIS_HOST", "redis.internal")

	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "exact", cfg.Risk.MatchPolicy)
	assert.Equal(t, "redis.internal", cfg.Redis.Host)
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "localhost", Port: 6379}

	assert.Equal(t, "localhost:6379", cfg.Addr())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")

	assert.Error(t, err)
}
