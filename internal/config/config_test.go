package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"API_BASE_URL", "HTTP_ADDR", "HTTP_TIMEOUT", "REDIS_ADDR", "SESSION_TTL", "CONVERSION_DEBOUNCE", "MAX_PAGES", "PER_PAGE", "EXPORT_DELIMITER", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.RedisAddrs)
	assert.Equal(t, 500*time.Millisecond, cfg.ConversionDebounce)
	assert.Equal(t, 20, cfg.MaxPages)
	assert.Equal(t, 50, cfg.PerPage)
	assert.Equal(t, ",", cfg.ExportDelimiter)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://wallet.example.com/api")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "redis-a:6379, redis-b:6379,")
	t.Setenv("REDIS_CLUSTER", "true")
	t.Setenv("CONVERSION_DEBOUNCE", "750")
	t.Setenv("MAX_PAGES", "not-a-number")
	t.Setenv("PER_PAGE", "10")
	t.Setenv("EXPORT_DELIMITER", ";")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()
	assert.Equal(t, "https://wallet.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, []string{"redis-a:6379", "redis-b:6379"}, cfg.RedisAddrs)
	assert.True(t, cfg.RedisCluster)
	assert.Equal(t, 750*time.Millisecond, cfg.ConversionDebounce)
	assert.Equal(t, 20, cfg.MaxPages)
	assert.Equal(t, 10, cfg.PerPage)
	assert.Equal(t, ";", cfg.ExportDelimiter)
	assert.Equal(t, "debug", cfg.LogLevel)
}
