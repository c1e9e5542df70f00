package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gymbro/internal/flagx"
	"github.com/dmitrijs2005/gymbro/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	BaseURL        string          `json:"base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DatabasePath   string          `json:"database_path"`
	StorageDriver  string          `json:"storage_driver"`
	LogBackend     string          `json:"log_backend"`
	LogLevel       string          `json:"log_level"`
	LogEncoding    string          `json:"log_encoding"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics on
// read or decode errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.StorageDriver, jc.StorageDriver)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogEncoding, jc.LogEncoding)
	if jc.RequestTimeout != nil && jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
