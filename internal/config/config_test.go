package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Library API", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "library", cfg.Database.Database)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
}

func TestValidate_ProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_PASSWORD", "secret")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoadDatabaseConfig_Defaults(t *testing.T) {
	dbCfg, err := LoadDatabaseConfig()
	require.NoError(t, err)

	assert.Equal(t, int32(25), dbCfg.MaxConns)
	assert.Equal(t, int32(5), dbCfg.MinConns)
	assert.Equal(t, 5, dbCfg.MaxRetries)
	assert.Equal(t, 5*time.Minute, dbCfg.MaxConnLifetime)
	assert.Equal(t, time.Second, dbCfg.RetryDelay)
	assert.Equal(t, 10*time.Second, dbCfg.ConnectTimeout)
}

func TestLoadDatabaseConfig_RejectsMalformedDurations(t *testing.T) {
	t.Setenv("DB_MAX_CONN_LIFETIME", "five minutes")

	_, err := LoadDatabaseConfig()
	assert.Error(t, err)
}
