package feed

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/plexwatch/watchcomb/app/logger"
)

// Watchlist feeds carry the release year as a parenthesized suffix in the
// title, e.g. "Some Movie (2023)".
var (
	yearRe      = regexp.MustCompile(`\((\d{4})\)`)
	stripYearRe = regexp.MustCompile(`\s*\(\d{4}\)\s*`)
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses feed data and returns the extracted items in document order.
// Items missing a title or a link are skipped; a defect in a single item
// must never abort the run.
func (p *Parser) Run(data []byte) ([]Item, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(parsed.Items))
	dropped := 0
	for _, raw := range parsed.Items {
		item, ok := p.normalizeItem(raw)
		if !ok {
			dropped++
			continue
		}
		items = append(items, item)
	}

	if dropped > 0 {
		logger.Debugf("Dropped %d items with a missing title or link", dropped)
	}

	return items, nil
}

// normalizeItem converts a gofeed.Item to our Item format. The second
// return value is false when the item lacks a usable title or link.
func (p *Parser) normalizeItem(raw *gofeed.Item) (Item, bool) {
	title, year := extractYear(strings.TrimSpace(raw.Title))
	link := strings.TrimSpace(raw.Link)

	if title == "" || link == "" {
		return Item{}, false
	}

	item := Item{
		Title:       title,
		ReleaseYear: year,
		Link:        link,
	}

	if len(raw.Categories) > 0 {
		item.Category = strings.TrimSpace(raw.Categories[0])
	}

	return item, true
}

// extractYear pulls a 4-digit release year out of a raw title. The first
// parenthesized year wins and every year group is stripped from the title
// for cleaner output. A missing year is a normal outcome, reported as 0.
func extractYear(title string) (string, int) {
	match := yearRe.FindStringSubmatch(title)
	if match == nil {
		return title, 0
	}

	year, err := strconv.Atoi(match[1])
	if err != nil {
		return title, 0
	}

	clean := strings.TrimSpace(stripYearRe.ReplaceAllString(title, " "))
	return clean, year
}
