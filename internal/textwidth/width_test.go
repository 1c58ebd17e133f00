package textwidth

import "testing"

// TestString verifies display-width measurement for ASCII, wide, and
// zero-width content.
func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"spaces", "a b c", 5},
		{"cjk fullwidth", "日本語", 6},
		{"mixed ascii and cjk", "Go言語", 6},
		{"combining accent", "é", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := String(tt.input)
			if got != tt.want {
				t.Errorf("String(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestRune verifies per-rune width for narrow and wide runes.
func TestRune(t *testing.T) {
	tests := []struct {
		name  string
		input rune
		want  int
	}{
		{"ascii letter", 'a', 1},
		{"space", ' ', 1},
		{"cjk", '語', 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rune(tt.input)
			if got != tt.want {
				t.Errorf("Rune(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestWidest verifies the widest-line scan.
func TestWidest(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"nil", nil, 0},
		{"single", []string{"abc"}, 3},
		{"widest in middle", []string{"a", "abcd", "ab"}, 4},
		{"wide runes win", []string{"abcde", "日本語語"}, 8},
		{"empty lines", []string{"", ""}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Widest(tt.lines)
			if got != tt.want {
				t.Errorf("Widest(%v) = %d, want %d", tt.lines, got, tt.want)
			}
		})
	}
}
