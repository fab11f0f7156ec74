package config

// WatchlistConfig represents an optional watchlist configuration file
type WatchlistConfig struct {
	Feeds    []Feed   `yaml:"feeds"`
	Settings Settings `yaml:"settings"`
}

// Feed is one subscribed RSS source; list order determines merge order
type Feed struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

// Settings contains processing overrides; zero values mean "not set"
type Settings struct {
	RemoveUnreleased *bool  `yaml:"remove_unreleased"`
	Timeout          int    `yaml:"timeout"` // seconds
	Output           string `yaml:"output"`
	Blacklist        string `yaml:"blacklist"`
}
