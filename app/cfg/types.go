package cfg

import "strings"

type Cfg struct {
	// Pipeline inputs
	Feeds      string
	ConfigFile string
	Blacklist  string

	// Output configuration
	Output string
	Stdout bool

	// Filtering
	RemoveUnreleased bool

	// Fetching
	Timeout   int // seconds
	UserAgent string

	// Logging
	LogLevel string
	LogFile  string

	// Application metadata
	Version string
}

// FeedURLs splits the comma-separated feed list, preserving the supplied
// order. Surrounding whitespace is trimmed and empty entries are dropped.
func (c *Cfg) FeedURLs() []string {
	var urls []string
	for _, part := range strings.Split(c.Feeds, ",") {
		if url := strings.TrimSpace(part); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}
