package table

import (
	"strconv"
	"strings"
)

// Align controls horizontal text alignment within a column.
type Align int

const (
	// AlignLeft aligns content flush left (default).
	AlignLeft Align = iota
	// AlignRight aligns content flush right.
	AlignRight
	// AlignCenter centers content, giving the extra space to the right.
	AlignCenter
)

// String returns the human-readable name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

// TextStyle is a set of text attributes applied to a cell's content.
type TextStyle uint8

const (
	// StyleBold renders the content bold.
	StyleBold TextStyle = 1 << iota
	// StyleItalic renders the content italic.
	StyleItalic
	// StyleUnderline underlines the content.
	StyleUnderline
)

// Color is one of the sixteen ANSI terminal colors. The zero value means
// "no color".
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// foregroundCode returns the SGR foreground parameter for the color,
// or 0 for ColorDefault and out-of-range values.
func (c Color) foregroundCode() int {
	switch {
	case c >= ColorBlack && c <= ColorWhite:
		return 30 + int(c-ColorBlack)
	case c >= ColorBrightBlack && c <= ColorBrightWhite:
		return 90 + int(c-ColorBrightBlack)
	default:
		return 0
	}
}

// backgroundCode returns the SGR background parameter for the color,
// or 0 for ColorDefault and out-of-range values.
func (c Color) backgroundCode() int {
	switch {
	case c >= ColorBlack && c <= ColorWhite:
		return 40 + int(c-ColorBlack)
	case c >= ColorBrightBlack && c <= ColorBrightWhite:
		return 100 + int(c-ColorBrightBlack)
	default:
		return 0
	}
}

// sgrParams collects the SGR parameters for a style/color combination in a
// fixed order (attributes, then foreground, then background) so output is
// deterministic.
func sgrParams(style TextStyle, fg, bg Color) []int {
	var params []int
	if style&StyleBold != 0 {
		params = append(params, 1)
	}
	if style&StyleItalic != 0 {
		params = append(params, 3)
	}
	if style&StyleUnderline != 0 {
		params = append(params, 4)
	}
	if code := fg.foregroundCode(); code != 0 {
		params = append(params, code)
	}
	if code := bg.backgroundCode(); code != 0 {
		params = append(params, code)
	}
	return params
}

// styleText wraps content in the SGR escape sequence for the given attributes
// and resets afterwards. Content is returned unchanged when no attribute is
// set, so unstyled tables contain no escape sequences at all.
func styleText(content string, style TextStyle, fg, bg Color) string {
	params := sgrParams(style, fg, bg)
	if len(params) == 0 {
		return content
	}
	codes := make([]string, len(params))
	for i, p := range params {
		codes[i] = strconv.Itoa(p)
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + content + "\x1b[0m"
}
