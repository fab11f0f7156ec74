package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func serveRSS(t *testing.T, items string) *httptest.Server {
	t.Helper()
	body := fmt.Sprintf(`<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Watchlist</title>
    <link>https://example.com</link>
    <description>Test watchlist</description>
%s
  </channel>
</rss>`, items)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func serveError(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	return server
}

func testOptions() Options {
	return Options{
		CurrentYear: 2024,
		Timeout:     5 * time.Second,
		UserAgent:   "watchcomb-test",
	}
}

func TestProcessorRun_DeduplicatesAcrossFeeds(t *testing.T) {
	feed1 := serveRSS(t, `    <item>
      <title>A (2023)</title>
      <link>https://example.com/L1</link>
      <category>movie</category>
    </item>`)
	feed2 := serveRSS(t, `    <item>
      <title>A-dup (2099)</title>
      <link>https://example.com/L1</link>
      <category>movie</category>
    </item>
    <item>
      <title>B (2022)</title>
      <link>https://example.com/L2</link>
      <category>show</category>
    </item>`)

	sources := []Source{
		{Name: "feed1", URL: feed1.URL},
		{Name: "feed2", URL: feed2.URL},
	}
	processor := NewProcessor(sources, LoadBlacklist(filepath.Join(t.TempDir(), "none")), testOptions())

	digest, err := processor.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// The first-seen record for L1 wins, the later duplicate is discarded
	if !strings.Contains(digest, "#1:\n   Title: A\n   Released: 2023\n") {
		t.Errorf("Expected first block to keep A(2023), got:\n%s", digest)
	}
	if strings.Contains(digest, "A-dup") || strings.Contains(digest, "2099") {
		t.Errorf("Duplicate from the later feed should contribute nothing, got:\n%s", digest)
	}
	if !strings.Contains(digest, "#2:\n   Title: B\n   Released: 2022\n   Type: SHOW\n") {
		t.Errorf("Expected second block for B, got:\n%s", digest)
	}
}

func TestProcessorRun_SkipsFailingFeed(t *testing.T) {
	bad := serveError(t)
	good := serveRSS(t, `    <item>
      <title>Survivor (2021)</title>
      <link>https://example.com/survivor</link>
      <category>movie</category>
    </item>`)

	sources := []Source{
		{Name: "bad", URL: bad.URL},
		{Name: "good", URL: good.URL},
	}
	processor := NewProcessor(sources, LoadBlacklist(filepath.Join(t.TempDir(), "none")), testOptions())

	digest, err := processor.Run(context.Background())
	if err != nil {
		t.Fatalf("One failing feed should not abort the run, got: %v", err)
	}
	if !strings.Contains(digest, "Survivor") {
		t.Errorf("Expected items from the surviving feed, got:\n%s", digest)
	}
}

func TestProcessorRun_AllFeedsFailed(t *testing.T) {
	bad1 := serveError(t)
	bad2 := serveError(t)

	sources := []Source{
		{Name: "bad1", URL: bad1.URL},
		{Name: "bad2", URL: bad2.URL},
	}
	processor := NewProcessor(sources, LoadBlacklist(filepath.Join(t.TempDir(), "none")), testOptions())

	if _, err := processor.Run(context.Background()); !errors.Is(err, ErrAllFeedsFailed) {
		t.Errorf("Expected ErrAllFeedsFailed, got: %v", err)
	}
}

func TestProcessorRun_NoSources(t *testing.T) {
	processor := NewProcessor(nil, LoadBlacklist(filepath.Join(t.TempDir(), "none")), testOptions())

	if _, err := processor.Run(context.Background()); !errors.Is(err, ErrNoFeeds) {
		t.Errorf("Expected ErrNoFeeds, got: %v", err)
	}
}

func TestProcessorRun_EmptyFeedStillEmits(t *testing.T) {
	empty := serveRSS(t, "")

	processor := NewProcessor([]Source{{Name: "empty", URL: empty.URL}},
		LoadBlacklist(filepath.Join(t.TempDir(), "none")), testOptions())

	digest, err := processor.Run(context.Background())
	if err != nil {
		t.Fatalf("A successfully fetched empty feed should still complete, got: %v", err)
	}
	if digest != "" {
		t.Errorf("Expected an empty digest, got %q", digest)
	}
}

func TestProcessorRun_AppliesFilters(t *testing.T) {
	server := serveRSS(t, `    <item>
      <title>Keep Me (2020)</title>
      <link>https://example.com/keep</link>
      <category>movie</category>
    </item>
    <item>
      <title>Another Show (2020)</title>
      <link>https://example.com/blacklisted</link>
      <category>show</category>
    </item>
    <item>
      <title>Not Yet Out (2030)</title>
      <link>https://example.com/future</link>
      <category>movie</category>
    </item>`)

	blacklist := writeBlacklist(t, "another show\n")

	opts := testOptions()
	opts.RemoveUnreleased = true
	processor := NewProcessor([]Source{{Name: "feed", URL: server.URL}}, blacklist, opts)

	digest, err := processor.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(digest, "Keep Me") {
		t.Errorf("Expected 'Keep Me' to survive, got:\n%s", digest)
	}
	if strings.Contains(digest, "Another Show") {
		t.Errorf("Blacklisted title should be excluded, got:\n%s", digest)
	}
	if strings.Contains(digest, "Not Yet Out") {
		t.Errorf("Unreleased item should be excluded, got:\n%s", digest)
	}
}
