package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	APIBaseURL  string
	HTTPAddr    string
	HTTPTimeout time.Duration
	// CORSOrigins lists the presentation origins allowed to call the BFF.
	CORSOrigins []string

	// RedisAddrs empty keeps sessions in memory.
	RedisAddrs   []string
	RedisPass    string
	RedisCluster bool
	SessionTTL   time.Duration

	ConversionDebounce time.Duration
	MaxPages           int
	PerPage            int
	ExportDelimiter    string
	LogLevel           string
}

func Load() AppConfig {
	return AppConfig{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8000"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),

		RedisAddrs:   getEnvSlice("REDIS_ADDR", nil),
		RedisPass:    getEnv("REDIS_PASS", ""),
		RedisCluster: getEnvBool("REDIS_CLUSTER", false),
		SessionTTL:   getEnvDuration("SESSION_TTL", 12*time.Hour),

		ConversionDebounce: getEnvDuration("CONVERSION_DEBOUNCE", 500*time.Millisecond),
		MaxPages:           getEnvInt("MAX_PAGES", 20),
		PerPage:            getEnvInt("PER_PAGE", 50),
		ExportDelimiter:    getEnv("EXPORT_DELIMITER", ","),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := parts[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("750ms") or whole milliseconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
