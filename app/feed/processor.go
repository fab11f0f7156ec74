package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/plexwatch/watchcomb/app/logger"
)

// Options configure a pipeline run.
type Options struct {
	RemoveUnreleased bool
	CurrentYear      int // 0 means the current wall-clock year
	Timeout          time.Duration
	UserAgent        string
}

// Processor runs the watchlist pipeline: fetch each feed, extract its
// items, then dedupe, filter and format the combined collection. Stages run
// strictly in that order.
type Processor struct {
	sources      []Source
	parser       *Parser
	deduplicator *Deduplicator
	filterer     *Filterer
	generator    *Generator
	client       *http.Client
	timeout      time.Duration
	userAgent    string
}

func NewProcessor(sources []Source, blacklist *Blacklist, opts Options) *Processor {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.CurrentYear == 0 {
		opts.CurrentYear = time.Now().Year()
	}

	return &Processor{
		sources:      sources,
		parser:       NewParser(),
		deduplicator: NewDeduplicator(),
		filterer:     NewFilterer(blacklist, opts.RemoveUnreleased, opts.CurrentYear),
		generator:    NewGenerator(),
		client:       &http.Client{Timeout: opts.Timeout},
		timeout:      opts.Timeout,
		userAgent:    opts.UserAgent,
	}
}

// Run executes one pipeline pass and returns the rendered digest. A failure
// fetching or parsing one feed only skips that feed; the run is fatal when
// no feeds are configured or every feed failed. A successful run always
// yields output, even an empty digest.
func (p *Processor) Run(ctx context.Context) (string, error) {
	if len(p.sources) == 0 {
		return "", ErrNoFeeds
	}

	perFeed := make([][]Item, 0, len(p.sources))
	succeeded := 0

	for _, source := range p.sources {
		data, err := p.fetchFeed(ctx, source.URL)
		if err != nil {
			logger.Warnf("Skipping feed %s: %v", source.Name, err)
			continue
		}

		items, err := p.parser.Run(data)
		if err != nil {
			logger.Warnf("Skipping feed %s: %v", source.Name, err)
			continue
		}

		logger.Infof("Extracted %d items from %s", len(items), source.Name)
		perFeed = append(perFeed, items)
		succeeded++
	}

	if succeeded == 0 {
		return "", ErrAllFeedsFailed
	}

	merged := p.deduplicator.Run(perFeed)
	logger.Infof("Merged %d unique items from %d/%d feeds", len(merged), succeeded, len(p.sources))

	kept := p.filterer.Run(merged)
	if excluded := len(merged) - len(kept); excluded > 0 {
		logger.Infof("Filtered out %d items", excluded)
	}

	return p.generator.Run(kept), nil
}

func (p *Processor) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
