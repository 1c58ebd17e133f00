package table

import (
	"strings"
	"testing"
)

func TestAlign_String(t *testing.T) {
	tests := []struct {
		align Align
		want  string
	}{
		{AlignLeft, "left"},
		{AlignRight, "right"},
		{AlignCenter, "center"},
		{Align(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.align.String(); got != tt.want {
				t.Errorf("Align(%d).String() = %q, want %q", tt.align, got, tt.want)
			}
		})
	}
}

func TestStyleText(t *testing.T) {
	tests := []struct {
		name  string
		style TextStyle
		fg    Color
		bg    Color
		want  string
	}{
		{"plain", 0, ColorDefault, ColorDefault, "hi"},
		{"bold", StyleBold, ColorDefault, ColorDefault, "\x1b[1mhi\x1b[0m"},
		{"bold red", StyleBold, ColorRed, ColorDefault, "\x1b[1;31mhi\x1b[0m"},
		{"all attributes", StyleBold | StyleItalic | StyleUnderline, ColorDefault, ColorDefault, "\x1b[1;3;4mhi\x1b[0m"},
		{"fg and bg", 0, ColorWhite, ColorBlue, "\x1b[37;44mhi\x1b[0m"},
		{"bright fg", 0, ColorBrightGreen, ColorDefault, "\x1b[92mhi\x1b[0m"},
		{"bright bg", 0, ColorDefault, ColorBrightBlack, "\x1b[100mhi\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := styleText("hi", tt.style, tt.fg, tt.bg)
			if got != tt.want {
				t.Errorf("styleText(%q, %v, %v, %v) = %q, want %q", "hi", tt.style, tt.fg, tt.bg, got, tt.want)
			}
		})
	}
}

func TestStyleText_PlainHasNoEscapes(t *testing.T) {
	got := styleText("plain text", 0, ColorDefault, ColorDefault)
	if strings.Contains(got, "\x1b") {
		t.Errorf("unstyled content contains escape sequences: %q", got)
	}
}

func TestColorCodes(t *testing.T) {
	tests := []struct {
		color  Color
		wantFg int
		wantBg int
	}{
		{ColorDefault, 0, 0},
		{ColorBlack, 30, 40},
		{ColorRed, 31, 41},
		{ColorWhite, 37, 47},
		{ColorBrightBlack, 90, 100},
		{ColorBrightWhite, 97, 107},
		{Color(200), 0, 0},
	}

	for _, tt := range tests {
		if got := tt.color.foregroundCode(); got != tt.wantFg {
			t.Errorf("Color(%d).foregroundCode() = %d, want %d", tt.color, got, tt.wantFg)
		}
		if got := tt.color.backgroundCode(); got != tt.wantBg {
			t.Errorf("Color(%d).backgroundCode() = %d, want %d", tt.color, got, tt.wantBg)
		}
	}
}
