package feed

// Item is one extracted watchlist entry. Items are immutable after
// extraction; filtering builds new slices instead of mutating in place.
type Item struct {
	Title       string
	ReleaseYear int // 0 when the feed gave no year
	Category    string
	Link        string // unique identity, case-sensitive
}

// Source is one subscribed RSS feed. The order sources are supplied in
// determines the merge order during deduplication.
type Source struct {
	Name string
	URL  string
}
