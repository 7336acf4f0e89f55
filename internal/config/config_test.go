package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "odyssey-lab", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Footprint.AnalysisDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Footprint.SocialDelay)
	assert.Equal(t, time.Hour, cfg.Footprint.CacheTTL)
	assert.Equal(t, 20, cfg.Footprint.HistoryLimit)
	assert.Equal(t, 0, cfg.Footprint.ReferenceYear)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
app:
  name: footprint-test
  environment: production
server:
  http_port: 9090
database:
  enabled: true
  host: db.internal
  port: 5433
  user: analyst
  password: secret
  dbname: footprints
footprint:
  analysis_delay: 10ms
  social_delay: 5ms
  reference_year: 2025
  history_limit: 5
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "footprint-test", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 10*time.Millisecond, cfg.Footprint.AnalysisDelay)
	assert.Equal(t, 5*time.Millisecond, cfg.Footprint.SocialDelay)
	assert.Equal(t, 2025, cfg.Footprint.ReferenceYear)
	assert.Equal(t, 5, cfg.Footprint.HistoryLimit)

	// values not in the file keep their defaults
	assert.Equal(t, time.Hour, cfg.Footprint.CacheTTL)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ODYSSEY_DATABASE_HOST", "pg.example.net")
	t.Setenv("ODYSSEY_REDIS_ENABLED", "true")
	t.Setenv("ODYSSEY_APP_ENVIRONMENT", "staging")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "pg.example.net", cfg.Database.Host)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "staging", cfg.App.Environment)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "odyssey",
		Password: "pw",
		DBName:   "footprints",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://odyssey:pw@localhost:5432/footprints?sslmode=disable", db.DSN())
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
