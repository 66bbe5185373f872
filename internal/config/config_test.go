package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "NINJA_API_KEY", "NINJA_BASE_URL",
	"TAXONOMY_TIMEOUT", "TAXONOMY_CACHE_TTL", "PICTURE_FETCH_TIMEOUT", "ID_STRATEGY", "SHUTDOWN_TIMEOUT",
}

// clearEnv deja el entorno limpio; t.Setenv restaura al terminar.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "pet-store-inventory", cfg.AppName)
	assert.Equal(t, "https://api.api-ninjas.com/v1/animals", cfg.NinjaBaseURL)
	assert.Empty(t, cfg.NinjaAPIKey)
	assert.Equal(t, 10*time.Second, cfg.TaxonomyTimeout)
	assert.Equal(t, time.Hour, cfg.TaxonomyCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.PictureFetchTimeout)
	assert.Equal(t, "sequential", cfg.IDStrategy)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverridesAndDotEnv(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("NINJA_API_KEY=from-file\nPORT=9999\n"), 0o600))
	t.Setenv("PORT", "9090")
	t.Setenv("ID_STRATEGY", "UUID")
	t.Setenv("TAXONOMY_CACHE_TTL", "0")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port, ".env no pisa el entorno")
	assert.Equal(t, "from-file", cfg.NinjaAPIKey)
	assert.Equal(t, "uuid", cfg.IDStrategy)
	assert.Zero(t, cfg.TaxonomyCacheTTL)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("TAXONOMY_TIMEOUT", "ten seconds")
	t.Setenv("ID_STRATEGY", "random")

	_, err := Load(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAXONOMY_TIMEOUT")
	assert.Contains(t, err.Error(), "ID_STRATEGY")
}
