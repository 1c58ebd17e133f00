package table

import (
	"reflect"
	"testing"
)

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"fits exactly", "aaaa bbbb cccc", 14, []string{"aaaa bbbb cccc"}},
		{"fitting line keeps inner whitespace", "a  b", 10, []string{"a  b"}},
		{"no width limit", "anything at all", 0, []string{"anything at all"}},
		{"empty", "", 3, []string{""}},
		{"one word per line", "aaaa bbbb cccc", 6, []string{"aaaa", "bbbb", "cccc"}},
		{"two words per line", "aaaa bbbb cccc", 9, []string{"aaaa bbbb", "cccc"}},
		{"collapses whitespace when wrapping", "a    b", 3, []string{"a b"}},
		{"hard split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"word follows hard split", "abcdefghij xy", 4, []string{"abcd", "efgh", "ij", "xy"}},
		{"wide rune split", "日本語です", 4, []string{"日本", "語で", "す"}},
		{"wide runes wrap on space", "日本 語", 5, []string{"日本", "語"}},
		{"overwide rune still emitted", "日", 1, []string{"日"}},
		{"whitespace only", "     ", 2, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLine(tt.line, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapLine(%q, %d) = %q, want %q", tt.line, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapLine_NeverLosesContent(t *testing.T) {
	inputs := []string{
		"the quick brown fox jumps over the lazy dog",
		"supercalifragilisticexpialidocious",
		"日本語のテキストを折り返す",
	}

	for _, in := range inputs {
		for width := 1; width <= 12; width++ {
			joined := ""
			for _, part := range wrapLine(in, width) {
				joined += part
			}
			// Wrapping may drop the spaces it broke on, but never letters.
			for _, r := range in {
				if r == ' ' {
					continue
				}
				if !containsRune(joined, r) {
					t.Fatalf("wrapLine(%q, %d) lost %q", in, width, r)
				}
			}
		}
	}
}

func containsRune(s string, want rune) bool {
	for _, r := range s {
		if r == want {
			return true
		}
	}
	return false
}

func TestWrapLines(t *testing.T) {
	got := wrapLines([]string{"aaaa bbbb", "cc"}, 4)
	want := []string{"aaaa", "bbbb", "cc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrapLines = %q, want %q", got, want)
	}

	if got := wrapLines(nil, 4); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("wrapLines(nil) = %q, want one empty line", got)
	}
}
