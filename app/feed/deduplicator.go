package feed

type Deduplicator struct{}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Run merges per-feed item lists into a single collection with unique links.
// Feeds are visited in the supplied order and items in document order; the
// first occurrence of a link wins verbatim and later duplicates are
// discarded entirely, even when their other fields differ.
func (d *Deduplicator) Run(feeds [][]Item) []Item {
	seen := make(map[string]struct{})
	merged := []Item{}

	for _, items := range feeds {
		for _, item := range items {
			if _, ok := seen[item.Link]; ok {
				continue
			}
			seen[item.Link] = struct{}{}
			merged = append(merged, item)
		}
	}

	return merged
}
