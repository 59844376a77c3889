package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "dados", cfg.Data.Dir)
	assert.Equal(t, int64(42), cfg.Data.Seed)
	assert.False(t, cfg.Data.UseRealData)
	assert.True(t, cfg.Data.FallbackSynthetic)
	assert.True(t, cfg.Data.CacheEnabled)
	assert.False(t, cfg.Data.AllowOverwrite)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CAMPUS_SERVER_PORT", "9999")
	t.Setenv("CAMPUS_DATA_USE_REAL_DATA", "true")
	t.Setenv("CAMPUS_DATA_SEED", "7")
	t.Setenv("CAMPUS_LOGGING_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.True(t, cfg.Data.UseRealData)
	assert.Equal(t, int64(7), cfg.Data.Seed)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "CAMPUS_SERVER_PORT", "70000"},
		{"bad format", "CAMPUS_LOGGING_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestDataDirResolution(t *testing.T) {
	cfg := Default()

	abs := filepath.Join(t.TempDir(), "dados")
	cfg.Data.Dir = abs
	assert.Equal(t, abs, cfg.DataDir())

	cfg.Data.Dir = "relativo"
	assert.True(t, filepath.IsAbs(cfg.DataDir()))
	assert.Equal(t, "relativo", filepath.Base(cfg.DataDir()))
}

func TestEnsureDataDir(t *testing.T) {
	cfg := Default()
	cfg.Data.Dir = filepath.Join(t.TempDir(), "sub", "dados")
	require.NoError(t, cfg.EnsureDataDir())
	assert.DirExists(t, cfg.Data.Dir)
}

func TestEnsureDataDirReadOnlySkips(t *testing.T) {
	cfg := Default()
	cfg.Data.Dir = filepath.Join(t.TempDir(), "never")
	cfg.Data.ReadOnly = true
	require.NoError(t, cfg.EnsureDataDir())
	assert.NoDirExists(t, cfg.Data.Dir)
}
