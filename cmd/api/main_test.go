package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flights.flyazureva.com/internal/appconf"
)

func TestParseFlagsDefaultsFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_DSN", "postgres://flights@localhost/flights")
	t.Setenv("ALLOWED_ORIGINS", "https://flyazureva.com, https://staff.flyazureva.com")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("SCHEDULE_REFRESH", "6h")

	cfg, logger := parseFlags(nil)

	assert.NotNil(t, logger)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, appconf.Production, cfg.Env)
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Equal(t, "postgres://flights@localhost/flights", cfg.DBDSN)
	assert.Equal(t, []string{"https://flyazureva.com", "https://staff.flyazureva.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, 6*time.Hour, cfg.ScheduleRefresh)
}

func TestParseFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")

	cfg, _ := parseFlags([]string{"-port", "9000", "-env", "test", "-rate-limit", "0"})

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, appconf.Test, cfg.Env)
	assert.Equal(t, 0, cfg.RateLimit)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b "))
}
