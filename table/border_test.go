package table

import (
	"errors"
	"testing"
)

func TestParseBorderStyle(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want BorderStyle
	}{
		{"unicode", "│ ┌ ┐ └ ┘ ├ ┤ ┬ ┴ ┼ ─", BorderUnicode},
		{"rounded", "│ ╭ ╮ ╰ ╯ ├ ┤ ┬ ┴ ┼ ─", BorderRounded},
		{"ascii", "| + + + + + + + + + -", BorderASCII},
		{"extra whitespace", "  │  ┌ ┐ └ ┘ ├ ┤ ┬ ┴ ┼ ─  ", BorderUnicode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBorderStyle(tt.spec)
			if err != nil {
				t.Fatalf("ParseBorderStyle(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseBorderStyle(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseBorderStyle_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		wantCount int
		wantToken string
	}{
		{"empty", "", 0, ""},
		{"too few", "| + + -", 4, ""},
		{"too many", "| + + + + + + + + + - -", 12, ""},
		{"multi-rune token", "|x ┌ ┐ └ ┘ ├ ┤ ┬ ┴ ┼ ─", 11, "|x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBorderStyle(tt.spec)
			if err == nil {
				t.Fatalf("ParseBorderStyle(%q) succeeded, want error", tt.spec)
			}
			var mErr *MalformedBorderStyleError
			if !errors.As(err, &mErr) {
				t.Fatalf("ParseBorderStyle(%q) error type %T, want *MalformedBorderStyleError", tt.spec, err)
			}
			if mErr.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", mErr.Count, tt.wantCount)
			}
			if mErr.BadToken != tt.wantToken {
				t.Errorf("BadToken = %q, want %q", mErr.BadToken, tt.wantToken)
			}
		})
	}
}

func TestBorderStyle_RoundTrip(t *testing.T) {
	specs := []string{
		"│ ┌ ┐ └ ┘ ├ ┤ ┬ ┴ ┼ ─",
		"│ ╭ ╮ ╰ ╯ ├ ┤ ┬ ┴ ┼ ─",
		"| + + + + + + + + + -",
		"# A B C D E F G H I =",
	}

	for _, spec := range specs {
		parsed, err := ParseBorderStyle(spec)
		if err != nil {
			t.Fatalf("ParseBorderStyle(%q) error: %v", spec, err)
		}
		if got := parsed.String(); got != spec {
			t.Errorf("round trip of %q = %q", spec, got)
		}
	}
}

func TestBorderStyle_Equality(t *testing.T) {
	a := BorderUnicode
	b, err := ParseBorderStyle(BorderUnicode.String())
	if err != nil {
		t.Fatalf("ParseBorderStyle error: %v", err)
	}
	if a != b {
		t.Errorf("parsed copy differs from original: %+v vs %+v", b, a)
	}
	if BorderUnicode == BorderRounded {
		t.Error("BorderUnicode and BorderRounded compare equal")
	}
}

func TestBorderStyle_IsZero(t *testing.T) {
	var zero BorderStyle
	if !zero.isZero() {
		t.Error("zero BorderStyle should report isZero")
	}
	if BorderASCII.isZero() {
		t.Error("BorderASCII should not report isZero")
	}
}
