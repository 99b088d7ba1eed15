package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ACCESS_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("AUTO_MIGRATE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ACCESS_TTL", "1h")
	t.Setenv("DB_MAX_LIFETIME", "60")
	t.Setenv("AUTH_RATE_LIMIT", "not-a-number")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.AccessTTL)
	assert.Equal(t, time.Minute, cfg.DBMaxLifetime)
	assert.Equal(t, 30, cfg.AuthRateLimit)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("ACCESS_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}
