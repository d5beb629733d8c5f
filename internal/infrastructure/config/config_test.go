package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "https://api.spoonacular.com", cfg.Spoonacular.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Spoonacular.Timeout)
	assert.Equal(t, 8, cfg.Spoonacular.SearchLimit)
	assert.Equal(t, 5, cfg.Spoonacular.DetailLimit)
	assert.False(t, cfg.Spoonacular.Configured())
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "web", cfg.StaticDir)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("SPOONACULAR_API_KEY", "abcd1234efgh")
	t.Setenv("SPOONACULAR_TIMEOUT", "3s")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.Spoonacular.Configured())
	assert.Equal(t, 3*time.Second, cfg.Spoonacular.Timeout)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfigRejectsBadDetailLimit(t *testing.T) {
	t.Setenv("SPOONACULAR_SEARCH_LIMIT", "3")
	t.Setenv("SPOONACULAR_DETAIL_LIMIT", "5")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "abcd...mnop", MaskAPIKey("abcdefghijklmnop"))
}
