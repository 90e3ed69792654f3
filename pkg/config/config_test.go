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

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.MaxPollWait)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.False(t, cfg.AllowEnvKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KBCHAT_MODEL", "gemini-2.5-pro")
	t.Setenv("KBCHAT_POLL_INTERVAL", "500ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
}

func TestLoadRejectsBadPollBudget(t *testing.T) {
	t.Setenv("KBCHAT_POLL_INTERVAL", "1m")
	t.Setenv("KBCHAT_MAX_POLL_WAIT", "1s")

	_, err := Load()
	require.Error(t, err)
}

func TestAPIKeyInteractiveWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg := &Config{AllowEnvKey: true}

	assert.Equal(t, "typed-key", cfg.APIKey(" typed-key "))
}

func TestAPIKeyEnvFallbackDisabledByDefault(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GOOGLE_API_KEY", "env-key-2")
	cfg := &Config{}

	assert.Empty(t, cfg.APIKey(""))
}

func TestAPIKeyEnvFallbackWhenEnabled(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg := &Config{AllowEnvKey: true}

	assert.Equal(t, "env-key", cfg.APIKey(""))
}
