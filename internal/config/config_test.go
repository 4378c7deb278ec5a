package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 4000, cfg.Server.Port)
	require.Equal(t, "data.json", cfg.Store.Path)
	require.Equal(t, 64, cfg.Bus.BufferSize)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "development", cfg.Environment)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("STORE_PATH", "/var/lib/gatherly/data.json")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, "/var/lib/gatherly/data.json", cfg.Store.Path)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8081
store:
  path: /tmp/data.json
bus:
  buffer_size: 16
rate_limit:
  per_minute: 10
  burst: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Server.Port)
	require.Equal(t, "/tmp/data.json", cfg.Store.Path)
	require.Equal(t, 16, cfg.Bus.BufferSize)
	require.Equal(t, 10, cfg.RateLimit.PerMinute)
	// Untouched sections keep their defaults.
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8081\n"), 0o644))
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")
	_, err := Load("")
	require.Error(t, err)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("BUS_BUFFER_SIZE", "not-a-number")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Bus.BufferSize)
}
