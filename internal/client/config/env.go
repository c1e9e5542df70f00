package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with GYMBRO_* variables. A .env file in the working
// directory is loaded first when present; it never overrides variables that
// are already set in the environment.
//
//	GYMBRO_BASE_URL, GYMBRO_REQUEST_TIMEOUT ("15s" or seconds),
//	GYMBRO_DB_PATH, GYMBRO_STORAGE, GYMBRO_LOG_BACKEND, GYMBRO_LOG_LEVEL,
//	GYMBRO_LOG_ENCODING
func parseEnv(cfg *Config) {
	_ = godotenv.Load(".env")

	cfg.BaseURL = getString("GYMBRO_BASE_URL", cfg.BaseURL)
	cfg.RequestTimeout = getDuration("GYMBRO_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.DatabasePath = getString("GYMBRO_DB_PATH", cfg.DatabasePath)
	cfg.StorageDriver = getString("GYMBRO_STORAGE", cfg.StorageDriver)
	cfg.LogBackend = getString("GYMBRO_LOG_BACKEND", cfg.LogBackend)
	cfg.LogLevel = getString("GYMBRO_LOG_LEVEL", cfg.LogLevel)
	cfg.LogEncoding = getString("GYMBRO_LOG_ENCODING", cfg.LogEncoding)
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getDuration reads a positive duration; anything else keeps fallback.
func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(val)
	if err != nil {
		seconds, aerr := strconv.Atoi(val)
		if aerr != nil {
			return fallback
		}
		parsed = time.Duration(seconds) * time.Second
	}
	if parsed <= 0 {
		return fallback
	}
	return parsed
}
