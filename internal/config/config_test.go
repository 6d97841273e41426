package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("OTEL_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "", cfg.Database.Connection)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, 60*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DB_CONNECTION_STRING", "host=db user=app dbname=varaus")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME_MINUTES", "5")
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "varaus-test")

	cfg := Load()

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "host=db user=app dbname=varaus", cfg.Database.Connection)
	assert.Equal(t, 3, cfg.Database.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "silent", cfg.Database.LogLevel)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "varaus-test", cfg.Tracing.ServiceName)
}
