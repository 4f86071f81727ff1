package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
log_level = "trace"
log_to_stdout = true
request_timeout_seconds = 5

[production]
log_level = "info"
logs_path = "/var/log/intervals-mcp"
api_base_url = "https://intervals.icu/api/v1"
http_host = "0.0.0.0"
http_port = 9000
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigToml), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestConfig(t)

	t.Run("development", func(t *testing.T) {
		cfg, err := Load("development", path)
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, "trace", cfg.LogLevel)
		assert.True(t, cfg.LogToStdout)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
		// default applied when not in the file
		assert.Equal(t, "https://intervals.icu/api/v1", cfg.APIBaseURL)
	})

	t.Run("production", func(t *testing.T) {
		cfg, err := Load("prod", path)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "/var/log/intervals-mcp", cfg.LogsPath)
		assert.Equal(t, 9000, cfg.HTTPPort)
		// no timeout in the file -> 30s default
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	})

	t.Run("unknown env", func(t *testing.T) {
		_, err := Load("staging", path)
		require.ErrorContains(t, err, "unknown env")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("development", filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Run("both set", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "k3y")
		t.Setenv(EnvAthleteID, "i42")

		creds, err := CredentialsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "k3y", creds.APIKey)
		assert.Equal(t, "i42", creds.AthleteID)
		assert.True(t, creds.Valid())
	})

	t.Run("empty api key fails naming the field", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")
		t.Setenv(EnvAthleteID, "i42")

		creds, err := CredentialsFromEnv()
		require.ErrorContains(t, err, EnvAPIKey)
		assert.False(t, creds.Valid())
	})

	t.Run("missing athlete id fails naming the field", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "k3y")
		t.Setenv(EnvAthleteID, "")

		_, err := CredentialsFromEnv()
		require.ErrorContains(t, err, EnvAthleteID)
	})

	t.Run("placeholder values are not configured", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "your_api_key_here")
		t.Setenv(EnvAthleteID, "i123456")

		_, err := CredentialsFromEnv()
		require.Error(t, err)
		assert.False(t, Credentials{APIKey: "your_api_key_here", AthleteID: "i42"}.Valid())
		assert.False(t, Credentials{APIKey: "k3y", AthleteID: "i123456"}.Valid())
	})
}
