// Package config loads runtime configuration for the GymBro CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//  4. GYMBRO_* environment variables, optionally read from a .env file.
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "base_url": "http://127.0.0.1:5000",
//	  "request_timeout": "10s",
//	  "database_path": "gymbro.db",
//	  "storage_driver": "sqlite",
//	  "log_backend": "zap",
//	  "log_level": "warn",
//	  "log_encoding": "console"
//	}
package config
