package table

import (
	"strings"

	"github.com/biswanathroul/pytable-formatter/internal/textwidth"
)

// wrapLine breaks one logical line into pieces no wider than width display
// cells. Lines that already fit pass through untouched, keeping their
// internal whitespace. Wrapping is greedy on whitespace boundaries; a single
// word wider than the target is hard-split mid-word. The result always has
// at least one entry so that every cell occupies at least one display line.
func wrapLine(line string, width int) []string {
	if width <= 0 || textwidth.String(line) <= width {
		return []string{line}
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, word := range words {
		w := textwidth.String(word)
		switch {
		case curWidth == 0 && w <= width:
			cur.WriteString(word)
			curWidth = w
		case curWidth+1+w <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + w
		case w <= width:
			flush()
			cur.WriteString(word)
			curWidth = w
		default:
			// Word is wider than the whole column: emit what we have,
			// then split the word itself.
			if curWidth > 0 {
				flush()
			}
			for _, part := range splitWord(word, width) {
				out = append(out, part)
			}
			// Keep the final fragment open so following words can join it.
			last := out[len(out)-1]
			out = out[:len(out)-1]
			cur.WriteString(last)
			curWidth = textwidth.String(last)
		}
	}
	if curWidth > 0 || len(out) == 0 {
		flush()
	}
	return out
}

// splitWord cuts a single word into rune sequences each at most width display
// cells wide. A rune wider than the target still gets emitted on its own
// line; truncating it would lose data.
func splitWord(word string, width int) []string {
	var out []string
	var cur strings.Builder
	curWidth := 0

	for _, r := range word {
		w := textwidth.Rune(r)
		if curWidth > 0 && curWidth+w > width {
			out = append(out, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteRune(r)
		curWidth += w
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// wrapLines applies wrapLine across pre-split content lines, concatenating
// the results in order.
func wrapLines(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}
