package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with DEVSERVER_* variables, loading .env first when
// present.
//
//	DEVSERVER_ADDR, DEVSERVER_SECRET_KEY, DEVSERVER_TOKEN_TTL ("24h" or
//	minutes), DEVSERVER_LOG_BACKEND, DEVSERVER_LOG_LEVEL, DEVSERVER_LOG_ENCODING
func parseEnv(cfg *Config) {
	_ = godotenv.Load(".env")

	if v := os.Getenv("DEVSERVER_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DEVSERVER_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("DEVSERVER_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenValidityDuration = d
		} else if m, err := strconv.Atoi(v); err == nil {
			cfg.TokenValidityDuration = time.Duration(m) * time.Minute
		}
	}
	if v := os.Getenv("DEVSERVER_LOG_BACKEND"); v != "" {
		cfg.LogBackend = v
	}
	if v := os.Getenv("DEVSERVER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DEVSERVER_LOG_ENCODING"); v != "" {
		cfg.LogEncoding = v
	}
}
