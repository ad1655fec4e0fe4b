package utils

import (
	"fmt"
	"html"
	"strings"
)

// SanitizeName trims surrounding whitespace, HTML-escapes special characters
// and encodes ASCII control characters as numeric entities.
func SanitizeName(value string) string {
	escaped := html.EscapeString(strings.TrimSpace(value))

	var b strings.Builder
	b.Grow(len(escaped))
	for _, r := range escaped {
		if r < 0x20 || r == 0x7f {
			fmt.Fprintf(&b, "&#%d;", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
