package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the GymBro CLI.
//
// Fields:
//   - BaseURL: scheme://host:port of the fitness backend.
//   - RequestTimeout: upper bound for a single API call.
//   - DatabasePath: file backing the durable session store.
//   - StorageDriver: "sqlite" or "bolt".
//   - LogBackend, LogLevel, LogEncoding: see logging.Config.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
	StorageDriver  string
	LogBackend     string
	LogLevel       string
	LogEncoding    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "gymbro.db"
	c.StorageDriver = "sqlite"
	c.LogBackend = "zap"
	c.LogLevel = "warn"
	c.LogEncoding = "console"
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file
// (if any), command-line flags and finally environment variables. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	parseEnv(cfg)
	return cfg
}
