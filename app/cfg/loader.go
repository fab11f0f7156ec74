package cfg

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

// Default values, exported so the caller can tell an explicit flag or
// environment override apart from an untouched default when merging with a
// watchlist configuration file.
const (
	DefaultConfigFile = "watchlist.yml"
	DefaultOutput     = "watchlist.txt"
	DefaultBlacklist  = "blacklist.txt"
	DefaultTimeout    = 30 // seconds
)

type rawCfg struct {
	// Pipeline inputs
	Feeds      string `long:"feeds" env:"RSS_URLS" description:"Comma-separated list of RSS feed URLs, combined in the given order"`
	ConfigFile string `long:"config" env:"CONFIG_FILE" default:"watchlist.yml" description:"Watchlist configuration file (optional)"`
	Blacklist  string `long:"blacklist" env:"BLACKLIST_FILE" default:"blacklist.txt" description:"Title blacklist file, one title per line (optional)"`

	// Output configuration
	Output string `long:"output" env:"OUTPUT_FILE" default:"watchlist.txt" description:"Output file path"`
	Stdout bool   `long:"stdout" env:"PRINT_STDOUT" description:"Print the digest to stdout instead of writing a file"`

	// Filtering
	RemoveUnreleased bool `long:"remove-unreleased" env:"REMOVE_UNRELEASED" description:"Exclude items whose release year is in the future"`

	// Fetching
	Timeout   int    `long:"timeout" env:"FETCH_TIMEOUT" default:"30" description:"Per-feed fetch timeout in seconds"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"WatchComb/1.0" description:"User agent string for HTTP requests"`

	// Logging
	LogLevel string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"Log level: debug, info, warn, error"`
	LogFile  string `long:"log-file" env:"LOG_FILE" description:"Log file path (optional, stderr by default)"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Feeds:            raw.Feeds,
		ConfigFile:       raw.ConfigFile,
		Blacklist:        raw.Blacklist,
		Output:           raw.Output,
		Stdout:           raw.Stdout,
		RemoveUnreleased: raw.RemoveUnreleased,
		Timeout:          raw.Timeout,
		UserAgent:        raw.UserAgent,
		LogLevel:         raw.LogLevel,
		LogFile:          raw.LogFile,
		Version:          GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
