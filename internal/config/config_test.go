package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recordgen.yaml")
	err := os.WriteFile(path, []byte(`
addr: ":9090"
db_path: /tmp/presets.db
log:
  level: debug
  format: json
rate_limit:
  rps: 5
  burst: 10
shutdown_timeout: 3s
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/presets.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 500, cfg.MaxExportPages, "unset keys keep their defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recordgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644))

	t.Setenv("RECORDGEN_ADDR", ":7070")
	t.Setenv("RECORDGEN_RATE_LIMIT_RPS", "0")
	t.Setenv("RECORDGEN_MAX_EXPORT_PAGES", "20")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 0.0, cfg.RateLimit.RPS)
	assert.Equal(t, 20, cfg.MaxExportPages)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad env number", func(t *testing.T) {
		t.Setenv("RECORDGEN_RATE_LIMIT_BURST", "lots")
		_, err := Load("")
		assert.ErrorContains(t, err, "RECORDGEN_RATE_LIMIT_BURST")
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("RECORDGEN_LOG_LEVEL", "loud")
		_, err := Load("")
		assert.ErrorContains(t, err, "invalid config")
	})
}
