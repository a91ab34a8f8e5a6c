package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redteamtools/trufflehub/internal/config"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGlobalConfigDefaults(t *testing.T) {
	cfg, err := config.LoadGlobalConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.github.com", cfg.GitHubConfig.APIBaseURL)
	assert.Equal(t, "trufflehog", cfg.ScannerConfig.TruffleHogPath)
	assert.Equal(t, 600, cfg.ScannerConfig.TruffleHogTimeoutSeconds)
	assert.False(t, cfg.ScannerConfig.OnlyVerified)
	assert.Equal(t, "info", cfg.LogConfig.LogLevel)
	assert.Empty(t, cfg.ReporterConfig.OutputDir)
}

func TestLoadGlobalConfigPartialYAMLOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
scanner_config:
  trufflehog_path: /usr/local/bin/trufflehog
  trufflehog_timeout_seconds: 120
classifier_config:
  medium_patterns:
    - vendored
`)

	cfg, err := config.LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/trufflehog", cfg.ScannerConfig.TruffleHogPath)
	assert.Equal(t, 120, cfg.ScannerConfig.TruffleHogTimeoutSeconds)
	assert.Equal(t, []string{"vendored"}, cfg.ClassifierConfig.MediumPatterns)
	// Untouched sections keep their defaults.
	assert.Equal(t, "https://api.github.com", cfg.GitHubConfig.APIBaseURL)
	assert.Equal(t, "info", cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfigJSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{"reporter_config": {"silent": true}}`)

	cfg, err := config.LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.ReporterConfig.Silent)
}

func TestLoadGlobalConfigUnreadableFile(t *testing.T) {
	_, err := config.LoadGlobalConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadGlobalConfigMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", "scanner_config: [not a mapping")
	_, err := config.LoadGlobalConfig(path)
	assert.Error(t, err)
}

func TestGetConfigPathPrefersFlag(t *testing.T) {
	path := writeConfigFile(t, "explicit.yaml", "")
	assert.Equal(t, path, config.GetConfigPath(path))
}

func TestGetConfigPathEnvFallback(t *testing.T) {
	path := writeConfigFile(t, "from-env.yaml", "")
	t.Setenv(config.ConfigPathEnvVar, path)
	assert.Equal(t, path, config.GetConfigPath(""))
}

func TestValidateConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, config.ValidateConfig(config.NewDefaultGlobalConfig()))
	})

	t.Run("missing scanner path", func(t *testing.T) {
		cfg := config.NewDefaultGlobalConfig()
		cfg.ScannerConfig.TruffleHogPath = ""
		assert.Error(t, config.ValidateConfig(cfg))
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := config.NewDefaultGlobalConfig()
		cfg.ScannerConfig.TruffleHogTimeoutSeconds = 0
		assert.Error(t, config.ValidateConfig(cfg))
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := config.NewDefaultGlobalConfig()
		cfg.LogConfig.LogLevel = "verbose"
		assert.Error(t, config.ValidateConfig(cfg))
	})

	t.Run("nonexistent output directory", func(t *testing.T) {
		cfg := config.NewDefaultGlobalConfig()
		cfg.ReporterConfig.OutputDir = filepath.Join(t.TempDir(), "does-not-exist")
		assert.Error(t, config.ValidateConfig(cfg))
	})

	t.Run("existing output directory", func(t *testing.T) {
		cfg := config.NewDefaultGlobalConfig()
		cfg.ReporterConfig.OutputDir = t.TempDir()
		assert.NoError(t, config.ValidateConfig(cfg))
	})

	t.Run("malformed webhook url", func(t *testing.T) {
		cfg := config.NewDefaultGlobalConfig()
		cfg.NotificationConfig.DiscordWebhookURL = "not a url"
		assert.Error(t, config.ValidateConfig(cfg))
	})
}
