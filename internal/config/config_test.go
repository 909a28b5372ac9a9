package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagEnabled(t *testing.T) {
	t.Parallel()

	enabled := []string{"true", "TRUE", "True", "1", "yes", "YES", "on", "On", " true "}
	for _, value := range enabled {
		assert.True(t, FlagEnabled(value), "expected %q to enable", value)
	}

	disabled := []string{"", "false", "0", "no", "off", "enabled", "anything"}
	for _, value := range disabled {
		assert.False(t, FlagEnabled(value), "expected %q to disable", value)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://newsapi.org/v2", cfg.NewsAPI.BaseURL)
	assert.Equal(t, 20, cfg.NewsAPI.PageSize)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.False(t, cfg.Features.RealSummarization)
	assert.False(t, cfg.Features.EnhancedDebate)
	assert.False(t, cfg.Features.RealVerification)
	assert.False(t, cfg.NewsAPI.Configured())
	assert.False(t, cfg.Gemini.Configured())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWSAPI_KEY", "news-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("ENABLE_REAL_SUMMARIZATION", "yes")
	t.Setenv("ENABLE_DEBATE_FORMAT", "on")
	t.Setenv("ENABLE_REAL_VERIFICATION", "nope")
	t.Setenv("PORT", "9090")

	cfg := Load()

	assert.Equal(t, "news-key", cfg.NewsAPI.APIKey)
	assert.True(t, cfg.NewsAPI.Configured())
	assert.Equal(t, "gemini-key", cfg.Gemini.APIKey)
	assert.True(t, cfg.Gemini.Configured())
	assert.True(t, cfg.Features.RealSummarization)
	assert.True(t, cfg.Features.EnhancedDebate)
	assert.False(t, cfg.Features.RealVerification)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadPlaceholderKeysCountAsUnconfigured(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "your_gemini_key_here")
	t.Setenv("NEWSAPI_KEY", "your_newsapi_key_here")

	cfg := Load()

	assert.False(t, cfg.Gemini.Configured())
	assert.False(t, cfg.NewsAPI.Configured())
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "newslens.yaml")
	raw := []byte(`
server:
  port: "3000"
  environment: staging
newsapi:
  apiKey: file-key
gemini:
  model: gemini-1.5-pro
features:
  enhancedDebate: true
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	t.Setenv("NEWSLENS_CONFIG", path)

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "staging", cfg.Server.Environment)
	assert.Equal(t, "file-key", cfg.NewsAPI.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	assert.True(t, cfg.Features.EnhancedDebate)
	// Untouched values keep their defaults.
	assert.Equal(t, "https://newsapi.org/v2", cfg.NewsAPI.BaseURL)
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "newslens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("newsapi:\n  apiKey: file-key\n"), 0o600))
	t.Setenv("NEWSLENS_CONFIG", path)
	t.Setenv("NEWSAPI_KEY", "env-key")

	cfg := Load()
	assert.Equal(t, "env-key", cfg.NewsAPI.APIKey)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NEWSLENS_CONFIG", "NEWSAPI_KEY", "GEMINI_API_KEY",
		"ENABLE_REAL_SUMMARIZATION", "ENABLE_DEBATE_FORMAT", "ENABLE_REAL_VERIFICATION",
		"LOG_LEVEL", "PORT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
