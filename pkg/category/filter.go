package category

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter keeps the categories whose title, description, or commands contain
// keyword, ignoring case. Matching categories are returned whole and in their
// original order. An empty keyword returns c itself.
func Filter(c Collection, keyword string) Collection {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return c
	}
	fold := cases.Fold()
	needle := fold.String(keyword)

	out := make(Collection, 0, len(c))
	for _, cat := range c {
		if cat == nil {
			continue
		}
		if strings.Contains(fold.String(haystack(cat)), needle) {
			out = append(out, cat)
		}
	}
	return out
}

func haystack(cat *Category) string {
	var b strings.Builder
	b.WriteString(cat.Title)
	b.WriteByte('\n')
	b.WriteString(cat.Description)
	for _, cmd := range cat.Commands {
		if cmd == nil {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(cmd.Command)
		b.WriteByte('\n')
		b.WriteString(cmd.Description)
	}
	return b.String()
}
