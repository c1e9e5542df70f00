// Package config handles configuration for the devserver, including
// defaults, environment (optionally from .env) and command-line flags.
package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/gymbro/internal/common"
)

// Config holds runtime settings for the GymBro devserver.
//
// Fields:
//   - Addr: HTTP bind address.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - LogBackend, LogLevel, LogEncoding: see logging.Config.
type Config struct {
	Addr                  string
	SecretKey             string
	TokenValidityDuration time.Duration
	ShutdownTimeout       time.Duration
	LogBackend            string
	LogLevel              string
	LogEncoding           string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.ShutdownTimeout = 5 * time.Second
	c.LogBackend = "zap"
	c.LogLevel = "info"
	c.LogEncoding = "json"
}

// LoadConfig builds a Config by applying defaults, then the environment and
// finally command-line flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg, args)

	// an explicitly empty secret gets a per-process random one
	if cfg.SecretKey == "" {
		key, err := common.MakeRandHexString(32)
		if err != nil {
			panic(err)
		}
		cfg.SecretKey = key
	}
	return cfg
}
