package feed

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders the final collection as a numbered text digest. Each item
// becomes a four-line block with 1-based numbering, blocks separated by a
// blank line. An empty collection renders as an empty string.
func (g *Generator) Run(items []Item) string {
	var buf bytes.Buffer

	for i, item := range items {
		if i > 0 {
			buf.WriteString("\n")
		}

		released := ""
		if item.ReleaseYear != 0 {
			released = strconv.Itoa(item.ReleaseYear)
		}

		fmt.Fprintf(&buf, "#%d:\n", i+1)
		fmt.Fprintf(&buf, "   Title: %s\n", item.Title)
		fmt.Fprintf(&buf, "   Released: %s\n", released)
		fmt.Fprintf(&buf, "   Type: %s\n", strings.ToUpper(item.Category))
		fmt.Fprintf(&buf, "   Link: %s\n", item.Link)
	}

	return buf.String()
}
