package table

import (
	"strings"
	"unicode/utf8"
)

// borderGlyphCount is the number of glyphs a border style is made of.
const borderGlyphCount = 11

// BorderStyle defines the eleven glyphs used to draw a table's frame.
//
// The wire format is a single string of eleven whitespace-separated glyph
// tokens in the fixed order: vertical, top-left, top-right, bottom-left,
// bottom-right, left junction, right junction, top junction, bottom junction,
// cross, horizontal.
type BorderStyle struct {
	// Vertical separates columns and draws the left/right edges.
	Vertical rune
	// TopLeft, TopRight, BottomLeft, BottomRight are the corner glyphs.
	TopLeft, TopRight, BottomLeft, BottomRight rune
	// LeftJunction and RightJunction are the T-glyphs where an interior
	// horizontal rule meets the table edge.
	LeftJunction, RightJunction rune
	// TopJunction and BottomJunction are the T-glyphs where a column boundary
	// meets the top or bottom border.
	TopJunction, BottomJunction rune
	// Cross is drawn where an interior rule crosses a column boundary.
	Cross rune
	// Horizontal fills rule lines.
	Horizontal rune
}

// BorderUnicode is the default box-drawing glyph set.
var BorderUnicode = BorderStyle{
	Vertical: '│',
	TopLeft:  '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
	LeftJunction: '├', RightJunction: '┤',
	TopJunction: '┬', BottomJunction: '┴',
	Cross: '┼', Horizontal: '─',
}

// BorderRounded is BorderUnicode with rounded corners.
var BorderRounded = BorderStyle{
	Vertical: '│',
	TopLeft:  '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	LeftJunction: '├', RightJunction: '┤',
	TopJunction: '┬', BottomJunction: '┴',
	Cross: '┼', Horizontal: '─',
}

// BorderASCII draws the frame with plain ASCII characters, for terminals and
// files where box-drawing glyphs are unwelcome.
var BorderASCII = BorderStyle{
	Vertical: '|',
	TopLeft:  '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
	LeftJunction: '+', RightJunction: '+',
	TopJunction: '+', BottomJunction: '+',
	Cross: '+', Horizontal: '-',
}

// ParseBorderStyle parses the eleven-token wire format. It returns a
// *MalformedBorderStyleError if the token count is not exactly eleven or any
// token is more than a single glyph.
func ParseBorderStyle(s string) (BorderStyle, error) {
	tokens := strings.Fields(s)
	if len(tokens) != borderGlyphCount {
		return BorderStyle{}, &MalformedBorderStyleError{Input: s, Count: len(tokens)}
	}

	glyphs := make([]rune, borderGlyphCount)
	for i, tok := range tokens {
		if utf8.RuneCountInString(tok) != 1 {
			return BorderStyle{}, &MalformedBorderStyleError{Input: s, Count: len(tokens), BadToken: tok}
		}
		r, _ := utf8.DecodeRuneInString(tok)
		glyphs[i] = r
	}

	return BorderStyle{
		Vertical: glyphs[0],
		TopLeft:  glyphs[1], TopRight: glyphs[2], BottomLeft: glyphs[3], BottomRight: glyphs[4],
		LeftJunction: glyphs[5], RightJunction: glyphs[6],
		TopJunction: glyphs[7], BottomJunction: glyphs[8],
		Cross: glyphs[9], Horizontal: glyphs[10],
	}, nil
}

// glyphs returns the eleven glyphs in wire-format order.
func (b BorderStyle) glyphs() []rune {
	return []rune{
		b.Vertical,
		b.TopLeft, b.TopRight, b.BottomLeft, b.BottomRight,
		b.LeftJunction, b.RightJunction,
		b.TopJunction, b.BottomJunction,
		b.Cross, b.Horizontal,
	}
}

// String serializes the style back to the eleven-token wire format.
// For any well-formed input, ParseBorderStyle(s).String() preserves the
// original token sequence.
func (b BorderStyle) String() string {
	parts := make([]string, 0, borderGlyphCount)
	for _, g := range b.glyphs() {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, " ")
}

// isZero reports whether no glyph has been set. A zero style in Options means
// "use BorderUnicode".
func (b BorderStyle) isZero() bool {
	return b == BorderStyle{}
}
