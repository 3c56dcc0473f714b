package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE", "")
	t.Setenv("REFRESH_TOKEN_EXPIRE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenExpire)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenExpire)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10, cfg.SaltRound)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("ACCESS_TOKEN_EXPIRE", "15")
	t.Setenv("SESSION_TTL", "48h")
	t.Setenv("SALT_ROUND", "not-a-number")
	t.Setenv("NODE_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpire)
	assert.Equal(t, 48*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10, cfg.SaltRound, "invalid ints fall back to the default")
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
