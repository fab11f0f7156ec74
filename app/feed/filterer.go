package feed

import (
	"github.com/plexwatch/watchcomb/app/logger"
)

type Filterer struct {
	blacklist        *Blacklist
	removeUnreleased bool
	currentYear      int
}

// NewFilterer creates a filterer. The current year is injected by the caller
// rather than computed here, so the unreleased rule stays testable.
func NewFilterer(blacklist *Blacklist, removeUnreleased bool, currentYear int) *Filterer {
	return &Filterer{
		blacklist:        blacklist,
		removeUnreleased: removeUnreleased,
		currentYear:      currentYear,
	}
}

// Run returns the items that survive blacklist and unreleased filtering,
// preserving their relative order. An item with an unknown release year is
// never excluded by the unreleased rule.
func (f *Filterer) Run(items []Item) []Item {
	kept := make([]Item, 0, len(items))

	for _, item := range items {
		if f.blacklist != nil && f.blacklist.Contains(item.Title) {
			logger.Debugf("Excluded blacklisted title: %s", item.Title)
			continue
		}

		if f.removeUnreleased && item.ReleaseYear != 0 && item.ReleaseYear > f.currentYear {
			logger.Debugf("Excluded unreleased item: %s (%d)", item.Title, item.ReleaseYear)
			continue
		}

		kept = append(kept, item)
	}

	return kept
}
