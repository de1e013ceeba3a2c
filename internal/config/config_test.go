package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RESOLVE_CONCURRENCY", "")
	t.Setenv("DB_CONN_MAX_LIFETIME", "")
	t.Setenv("LOCALE", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 4, cfg.ResolveConcurrency)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RESOLVE_CONCURRENCY", "8")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()
	assert.Equal(t, 8, cfg.ResolveConcurrency)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.False(t, cfg.IsDevelopment())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(&Config{LogLevel: "debug", Environment: "production"})
	assert.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(&Config{LogLevel: "bogus"})
	assert.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
