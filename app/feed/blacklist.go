package feed

import (
	"bufio"
	"os"
	"strings"
)

// Blacklist is a set of excluded titles, matched case-insensitively after
// trimming surrounding whitespace.
type Blacklist struct {
	titles map[string]struct{}
}

// LoadBlacklist reads a blacklist file with one title per line. Blank lines
// and lines starting with '#' are skipped. The blacklist is optional: a
// missing or unreadable file yields an empty set, not an error.
func LoadBlacklist(path string) *Blacklist {
	b := &Blacklist{titles: make(map[string]struct{})}

	file, err := os.Open(path)
	if err != nil {
		return b
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		b.titles[strings.ToLower(line)] = struct{}{}
	}

	return b
}

// Contains reports whether the title is blacklisted.
func (b *Blacklist) Contains(title string) bool {
	_, ok := b.titles[strings.ToLower(strings.TrimSpace(title))]
	return ok
}

func (b *Blacklist) Len() int {
	return len(b.titles)
}
