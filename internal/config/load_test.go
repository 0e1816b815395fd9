package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies that Load falls back to the built-in defaults
// when neither a config file nor environment variables are present.
func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t.TempDir())

	require.NoError(t, err, "load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 3000, cfg.Server.Port, "Default server port should be 3000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeoutSeconds)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.True(t, cfg.Store.Seed, "Seeding should be enabled by default")
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TAREAS_SERVER_PORT", "9090")
	t.Setenv("TAREAS_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TAREAS_STORE_SEED", "false")
	t.Setenv("TAREAS_TRACING_ENABLED", "false")

	cfg, err := load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.False(t, cfg.Store.Seed, "Seed flag should be loaded from environment variables")
	assert.False(t, cfg.Tracing.Enabled)
}

// TestLoadFromConfigFile verifies that a config.yaml in the search path is read
// and that environment variables still take precedence over it.
func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: 4000\n  log_level: warn\nstore:\n  seed: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.False(t, cfg.Store.Seed)

	t.Setenv("TAREAS_SERVER_PORT", "4100")
	cfg, err = load(dir)
	require.NoError(t, err)
	assert.Equal(t, 4100, cfg.Server.Port, "Environment should override the config file")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tareas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8081\n"), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "An explicit config file that does not exist is an error")
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Port out of range",
			envVars: map[string]string{"TAREAS_SERVER_PORT": "999999"},
		},
		{
			name:    "Negative port",
			envVars: map[string]string{"TAREAS_SERVER_PORT": "-1"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"TAREAS_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Zero shutdown timeout",
			envVars: map[string]string{"TAREAS_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "0"},
		},
		{
			name:    "Sample ratio above one",
			envVars: map[string]string{"TAREAS_TRACING_SAMPLE_RATIO": "1.5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for name, value := range tc.envVars {
				t.Setenv(name, value)
			}

			cfg, err := load(t.TempDir())

			require.Error(t, err, "load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
