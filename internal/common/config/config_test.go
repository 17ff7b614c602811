// internal/common/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeTestConfig(t, `
app:
  name: prediction-service
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "static", cfg.Catalog.Source)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 128, cfg.Cache.MaxEntries)
	assert.Equal(t, DefaultFactorWeights(), cfg.Scoring.Weights)
	assert.Equal(t, 8, cfg.Scoring.Workers)
	assert.False(t, cfg.Scoring.Noise.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile_RejectsBadWeights(t *testing.T) {
	path := writeTestConfig(t, `
scoring:
  weights:
    gpa: 0.5
    gre: 0.5
    language: 0.5
    research: 0.0
    experience: 0.0
    program_fit: 0.0
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestLoadFromFile_RedisBackendRequiresAddress(t *testing.T) {
	path := writeTestConfig(t, `
cache:
  backend: redis
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestLoadFromFile_FileSourceRequiresPath(t *testing.T) {
	path := writeTestConfig(t, `
catalog:
  source: file
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.path")
}

func TestLoadFromFile_UnsupportedCacheBackend(t *testing.T) {
	path := writeTestConfig(t, `
cache:
  backend: memcached
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
}

func TestFactorWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultFactorWeights().Validate())

	bad := DefaultFactorWeights()
	bad.GPA = -0.1
	bad.GRE = bad.GRE + 0.45
	require.Error(t, bad.Validate())
}

func TestGetDSN(t *testing.T) {
	p := PostgresConfig{Host: "localhost", Port: 5432, Database: "predictions", User: "app", Password: "secret", SSLMode: "disable"}
	assert.Equal(t, "host=localhost port=5432 user=app password=secret dbname=predictions sslmode=disable", p.GetDSN())
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, "1.5s", GetDuration(1500).String())
}
