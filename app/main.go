package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/plexwatch/watchcomb/app/cfg"
	"github.com/plexwatch/watchcomb/app/config"
	"github.com/plexwatch/watchcomb/app/feed"
	"github.com/plexwatch/watchcomb/app/logger"
	"github.com/plexwatch/watchcomb/app/output"
)

func main() {
	// A .env file is optional, same as the blacklist.
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		logger.Errorf("Failed to load configuration: %v", err)
		logger.Sync()
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if err := logger.Init(logger.Config{Level: appCfg.LogLevel, File: appCfg.LogFile}); err != nil {
		logger.Errorf("Failed to initialize logging: %v", err)
		logger.Sync()
		os.Exit(1)
	}

	logger.Infof("Watch Comb %s starting", appCfg.Version)

	fileCfg, err := config.NewLoader(appCfg.ConfigFile).Load()
	if err != nil {
		fatalf("Failed to load watchlist configuration: %v", err)
	}
	if fileCfg != nil {
		logger.Infof("Loaded watchlist configuration from %s", appCfg.ConfigFile)
	}

	settings := resolveSettings(appCfg, fileCfg)
	sources := resolveSources(appCfg, fileCfg)
	if len(sources) == 0 {
		fatalf("No feed URLs configured: set RSS_URLS, pass --feeds, or list feeds in %s", appCfg.ConfigFile)
	}
	logger.Infof("Processing %d feeds", len(sources))

	blacklist := feed.LoadBlacklist(settings.blacklist)
	if blacklist.Len() > 0 {
		logger.Infof("Loaded %d blacklisted titles from %s", blacklist.Len(), settings.blacklist)
	}

	processor := feed.NewProcessor(sources, blacklist, feed.Options{
		RemoveUnreleased: settings.removeUnreleased,
		CurrentYear:      time.Now().Year(),
		Timeout:          settings.timeout,
		UserAgent:        appCfg.UserAgent,
	})

	digest, err := processor.Run(context.Background())
	if err != nil {
		fatalf("Pipeline failed: %v", err)
	}

	if err := output.Write(digest, settings.output, appCfg.Stdout); err != nil {
		fatalf("Failed to emit output: %v", err)
	}

	if appCfg.Stdout {
		logger.Infof("Digest printed to stdout")
	} else {
		logger.Infof("Digest written to %s", settings.output)
	}
	logger.Sync()
}

// runSettings is the merged view of flags, environment and the optional
// watchlist configuration file. Explicit flag or environment values win;
// file values only replace untouched defaults.
type runSettings struct {
	output           string
	blacklist        string
	removeUnreleased bool
	timeout          time.Duration
}

func resolveSettings(appCfg *cfg.Cfg, fileCfg *config.WatchlistConfig) runSettings {
	settings := runSettings{
		output:           appCfg.Output,
		blacklist:        appCfg.Blacklist,
		removeUnreleased: appCfg.RemoveUnreleased,
		timeout:          time.Duration(appCfg.Timeout) * time.Second,
	}

	if fileCfg == nil {
		return settings
	}

	if settings.output == cfg.DefaultOutput && fileCfg.Settings.Output != "" {
		settings.output = fileCfg.Settings.Output
	}
	if settings.blacklist == cfg.DefaultBlacklist && fileCfg.Settings.Blacklist != "" {
		settings.blacklist = fileCfg.Settings.Blacklist
	}
	if !settings.removeUnreleased && fileCfg.Settings.RemoveUnreleased != nil {
		settings.removeUnreleased = *fileCfg.Settings.RemoveUnreleased
	}
	if appCfg.Timeout == cfg.DefaultTimeout && fileCfg.Settings.Timeout > 0 {
		settings.timeout = time.Duration(fileCfg.Settings.Timeout) * time.Second
	}

	return settings
}

// resolveSources builds the ordered feed list: flags and environment take
// precedence, then the configuration file.
func resolveSources(appCfg *cfg.Cfg, fileCfg *config.WatchlistConfig) []feed.Source {
	if urls := appCfg.FeedURLs(); len(urls) > 0 {
		sources := make([]feed.Source, 0, len(urls))
		for _, url := range urls {
			sources = append(sources, feed.Source{Name: url, URL: url})
		}
		return sources
	}

	if fileCfg == nil {
		return nil
	}

	sources := make([]feed.Source, 0, len(fileCfg.Feeds))
	for _, f := range fileCfg.Feeds {
		name := f.Name
		if name == "" {
			name = f.URL
		}
		sources = append(sources, feed.Source{Name: name, URL: f.URL})
	}
	return sources
}

func fatalf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
	logger.Sync()
	os.Exit(1)
}
