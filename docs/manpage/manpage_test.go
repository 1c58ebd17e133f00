package manpage

import (
	"strings"
	"testing"
)

func TestGenerate_ValidRoff(t *testing.T) {
	page := Generate("0.1.0", "abc1234", "2026-02-06")

	// Must start with .TH header.
	if !strings.HasPrefix(page, ".TH PYTABLE 1") {
		t.Errorf("man page should start with .TH header, got: %s", page[:80])
	}

	// Must contain all required sections.
	requiredSections := []string{
		".SH NAME",
		".SH SYNOPSIS",
		".SH DESCRIPTION",
		".SH OPTIONS",
		".SH KEYBINDINGS",
		".SH DOCUMENT FORMAT",
		".SH EXAMPLES",
		".SH ENVIRONMENT",
		".SH EXIT STATUS",
		".SH SEE ALSO",
		".SH AUTHORS",
		".SH BUGS",
		".SH VERSION",
	}

	for _, section := range requiredSections {
		if !strings.Contains(page, section) {
			t.Errorf("man page missing required section: %s", section)
		}
	}
}

func TestGenerate_ContainsVersion(t *testing.T) {
	page := Generate("1.2.3", "deadbeef", "2026-02-06")

	if !strings.Contains(page, "1.2.3") {
		t.Error("man page should contain the version string")
	}
	if !strings.Contains(page, "deadbeef") {
		t.Error("man page should contain the commit hash")
	}
}

func TestGenerate_ContainsAllFlags(t *testing.T) {
	page := Generate("0.1.0", "dev", "unknown")

	expectedFlags := []string{
		"file",
		"format",
		"width",
		"border",
		"padding",
		"title",
		"footer",
		"no\\-color",
		"tui",
		"watch",
		"demo",
		"verbose",
		"version",
		"man",
	}

	for _, flag := range expectedFlags {
		if !strings.Contains(page, flag) {
			t.Errorf("man page missing flag: -%s", flag)
		}
	}
}

func TestGenerate_ContainsKeybindings(t *testing.T) {
	page := Generate("0.1.0", "dev", "unknown")

	// Viewer keybindings come from the tui package's actual bindings.
	expectedKeys := []string{
		"scroll up",
		"scroll down",
		"cycle border",
		"toggle color",
		"reload",
		"help",
		"quit",
	}

	for _, key := range expectedKeys {
		if !strings.Contains(page, key) {
			t.Errorf("man page missing keybinding description: %q", key)
		}
	}
}

func TestGenerate_ContainsDocumentFields(t *testing.T) {
	page := Generate("0.1.0", "dev", "unknown")

	expectedFields := []string{
		"title",
		"footer",
		"padding",
		"min_width",
		"max_width",
		"border",
		"headers",
		"rows",
		"align",
		"span",
	}

	for _, field := range expectedFields {
		if !strings.Contains(page, field) {
			t.Errorf("man page missing document field: %s", field)
		}
	}
}

func TestGenerate_ContainsEnvironmentVars(t *testing.T) {
	page := Generate("0.1.0", "dev", "unknown")

	for _, envVar := range []string{"NO_COLOR", "COLUMNS"} {
		if !strings.Contains(page, envVar) {
			t.Errorf("man page missing environment variable: %s", envVar)
		}
	}
}

func TestGenerate_NoEmptyOutput(t *testing.T) {
	page := Generate("0.1.0", "dev", "unknown")

	if len(page) < 1000 {
		t.Errorf("man page seems too short: %d bytes", len(page))
	}
}

func TestRoffEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"ctrl-p", `ctrl\-p`},
		{"e.g.", `e\&.g\&.`},
		{`foo\bar`, `foo\\bar`},
	}

	for _, tt := range tests {
		got := roffEscape(tt.input)
		if got != tt.expected {
			t.Errorf("roffEscape(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
