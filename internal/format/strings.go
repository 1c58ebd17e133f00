// Package format provides small string helpers for viewer and CLI chrome.
package format

import (
	"github.com/biswanathroul/pytable-formatter/internal/textwidth"
)

// TruncateWithEllipsis shortens s to at most maxWidth terminal cells,
// appending "..." when content is dropped. Widths are measured in display
// cells, so East Asian wide runes count double. A maxWidth below 4
// hard-truncates without the suffix.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if textwidth.String(s) <= maxWidth {
		return s
	}
	if maxWidth < 4 {
		return cut(s, maxWidth)
	}
	return cut(s, maxWidth-3) + "..."
}

// cut returns the longest prefix of s that fits in width display cells.
func cut(s string, width int) string {
	var out []rune
	used := 0
	for _, r := range s {
		w := textwidth.Rune(r)
		if used+w > width {
			break
		}
		used += w
		out = append(out, r)
	}
	return string(out)
}
