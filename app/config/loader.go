package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the watchlist configuration file
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the YAML watchlist configuration. The file is optional: a
// missing file yields a nil configuration and no error.
func (l *Loader) Load() (*WatchlistConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", l.path, err)
	}

	var config WatchlistConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	return &config, nil
}

// validate validates the configuration
func (l *Loader) validate(config *WatchlistConfig) error {
	for i, feed := range config.Feeds {
		if feed.URL == "" {
			return fmt.Errorf("feed at index %d is missing a url", i)
		}
	}

	if config.Settings.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	return nil
}
