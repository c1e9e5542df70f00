package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gymbro/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-d string   session database path
//	-s string   storage driver (sqlite|bolt)
//	-l string   log level
//
// Unknown flags are filtered out first. Malformed values panic; a
// non-positive -t is ignored.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-s", "-l"})

	fs := flag.NewFlagSet("gymbro", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "session database path")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver: sqlite or bolt")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" && *timeout > 0 {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
