package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"HAZARD217_DB_PATH", "HAZARD217_MODE", "HAZARD217_LIMITS", "HAZARD217_WORKERS", "HAZARD217_LOG_LEVEL", "HAZARD217_DERATE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{Mode: "strict", LogLevel: "info"}, cfg)
}

func TestFromEnvReadsVariables(t *testing.T) {
	t.Setenv("HAZARD217_DB_PATH", "/tmp/h.db")
	t.Setenv("HAZARD217_MODE", "warn")
	t.Setenv("HAZARD217_LIMITS", "limits.toml")
	t.Setenv("HAZARD217_WORKERS", "8")
	t.Setenv("HAZARD217_LOG_LEVEL", "debug")
	t.Setenv("HAZARD217_DERATE", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		DBPath:     "/tmp/h.db",
		Mode:       "warn",
		LimitsPath: "limits.toml",
		Workers:    8,
		LogLevel:   "debug",
		Derate:     true,
	}, cfg)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("HAZARD217_WORKERS", "-1")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "HAZARD217_WORKERS")

	t.Setenv("HAZARD217_WORKERS", "2")
	t.Setenv("HAZARD217_DERATE", "sometimes")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "HAZARD217_DERATE")
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HAZARD217_MODE=warn\nHAZARD217_WORKERS=3\n"), 0o600))
	t.Chdir(dir)

	t.Setenv("HAZARD217_MODE", "")
	os.Unsetenv("HAZARD217_MODE")
	t.Setenv("HAZARD217_WORKERS", "")
	os.Unsetenv("HAZARD217_WORKERS")
	t.Setenv("HAZARD217_DERATE", "")
	os.Unsetenv("HAZARD217_DERATE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Mode)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HAZARD217_WORKERS", "1")
	t.Setenv("HAZARD217_DERATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Workers)
}
