package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, name := range apiKeyEnvVars {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearKeyEnv(t)
	cfg := Load()

	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultFilePath, cfg.FilePath)
	assert.Equal(t, DefaultDisplayName, cfg.DisplayName)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.True(t, cfg.AllowPlaceholder)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("DOCSIGHT_MODEL", "gemini-2.5-pro")
	t.Setenv("DOCSIGHT_FILE", "chart.webp")
	t.Setenv("DOCSIGHT_TIMEOUT", "30s")
	t.Setenv("DOCSIGHT_PLACEHOLDER", "false")

	cfg := Load()
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "chart.webp", cfg.FilePath)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.AllowPlaceholder)
}

func TestAPIKeyFallbackOrder(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "key-c")
	assert.Equal(t, "key-c", Load().APIKey)

	t.Setenv("GOOGLE_API_KEY", "key-b")
	assert.Equal(t, "key-b", Load().APIKey)

	t.Setenv("GOOGLE_AI_STUDIO_API_KEY", "key-a")
	assert.Equal(t, "key-a", Load().APIKey)
}

func TestValidateMissingKey(t *testing.T) {
	clearKeyEnv(t)
	cfg := Load()

	err := cfg.Validate()
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "GOOGLE_AI_STUDIO_API_KEY")
}

func TestValidateOK(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GOOGLE_AI_STUDIO_API_KEY", "key")
	require.NoError(t, Load().Validate())
}

func TestValidateEmptyModel(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GOOGLE_AI_STUDIO_API_KEY", "key")
	cfg := Load()
	cfg.Model = "  "
	require.Error(t, cfg.Validate())
}
