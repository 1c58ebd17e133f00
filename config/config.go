// Package config loads table documents: YAML files describing a table's
// layout options, headers, and rows, ready to build into a renderable table.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/biswanathroul/pytable-formatter/table"
)

// Document describes one table in YAML form.
type Document struct {
	// Title is overlaid on the top border.
	Title string `yaml:"title"`
	// Footer is overlaid on the bottom border.
	Footer string `yaml:"footer"`
	// Padding is the number of spaces on each side of cell content.
	Padding int `yaml:"padding"`
	// MinWidth is the smallest total rendered width (0 = no minimum).
	MinWidth int `yaml:"min_width"`
	// MaxWidth caps the total rendered width (0 = no maximum).
	MaxWidth int `yaml:"max_width"`
	// Border is a preset name ("unicode", "rounded", "ascii") or an
	// eleven-glyph border specification string. Empty inherits the border
	// of the options the table is built with.
	Border string `yaml:"border"`
	// Headers is the optional header row.
	Headers []CellSpec `yaml:"headers"`
	// Rows holds the body rows in display order.
	Rows [][]CellSpec `yaml:"rows"`
}

// CellSpec is one cell in a document: either a bare scalar or a mapping with
// display attributes.
type CellSpec struct {
	// Value is the cell's display text.
	Value string `yaml:"value"`
	// Align is "left", "right", or "center" (empty means left).
	Align string `yaml:"align"`
	// Style lists text attributes: "bold", "italic", "underline".
	Style []string `yaml:"style"`
	// Fg and Bg are color names (e.g. "red", "bright-green").
	Fg string `yaml:"fg"`
	// Bg is the background color name.
	Bg string `yaml:"bg"`
	// Span is the number of columns the cell occupies (0 or 1 = one).
	Span int `yaml:"span"`
}

// UnmarshalYAML accepts both a bare scalar (the common case) and a full
// mapping with display attributes.
func (c *CellSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Value = node.Value
		return nil
	}
	type plain CellSpec
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = CellSpec(p)
	return nil
}

// DefaultDocument returns a Document populated with the default layout.
func DefaultDocument() *Document {
	return &Document{
		Padding: 1,
	}
}

// Load reads a document from a YAML file, merging with defaults, and
// validates it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read document: %w", err)
	}
	return Parse(data)
}

// Parse decodes a document from YAML bytes, merging with defaults, and
// validates it.
func Parse(data []byte) (*Document, error) {
	doc := DefaultDocument()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("config: parse document: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks the document's fields and cell attribute names.
func (d *Document) Validate() error {
	if d.Padding < 0 {
		return fmt.Errorf("padding must be non-negative, got %d", d.Padding)
	}
	if d.MinWidth < 0 {
		return fmt.Errorf("min_width must be non-negative, got %d", d.MinWidth)
	}
	if d.MaxWidth < 0 {
		return fmt.Errorf("max_width must be non-negative, got %d", d.MaxWidth)
	}
	if _, err := BorderFromSpec(d.Border); err != nil {
		return fmt.Errorf("border: %w", err)
	}
	for i, spec := range d.Headers {
		if _, err := spec.cell(); err != nil {
			return fmt.Errorf("headers[%d]: %w", i, err)
		}
	}
	for i, row := range d.Rows {
		for j, spec := range row {
			if _, err := spec.cell(); err != nil {
				return fmt.Errorf("rows[%d][%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

// Build constructs the table the document describes. The base options supply
// caller-side concerns (color enablement, logging); the document's layout
// fields override the rest.
func (d *Document) Build(base table.Options) (*table.Table, error) {
	opts := base
	opts.Title = d.Title
	opts.Footer = d.Footer
	opts.Padding = d.Padding
	opts.MinWidth = d.MinWidth
	opts.MaxWidth = d.MaxWidth
	if d.Border != "" {
		border, err := BorderFromSpec(d.Border)
		if err != nil {
			return nil, fmt.Errorf("config: border: %w", err)
		}
		opts.Border = border
	}

	t := table.New(opts)
	if len(d.Headers) > 0 {
		vals, err := cellValues(d.Headers)
		if err != nil {
			return nil, fmt.Errorf("config: headers: %w", err)
		}
		if err := t.SetHeaders(vals...); err != nil {
			return nil, err
		}
	}
	for i, row := range d.Rows {
		vals, err := cellValues(row)
		if err != nil {
			return nil, fmt.Errorf("config: rows[%d]: %w", i, err)
		}
		if err := t.AddRow(vals...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// cellValues converts cell specifications into table cells.
func cellValues(specs []CellSpec) ([]any, error) {
	vals := make([]any, len(specs))
	for i, spec := range specs {
		c, err := spec.cell()
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		vals[i] = c
	}
	return vals, nil
}

// cell resolves the document's attribute names into a table cell.
func (c CellSpec) cell() (table.Cell, error) {
	align, err := alignFromName(c.Align)
	if err != nil {
		return table.Cell{}, err
	}
	style, err := styleFromNames(c.Style)
	if err != nil {
		return table.Cell{}, err
	}
	fg, err := colorFromName(c.Fg)
	if err != nil {
		return table.Cell{}, err
	}
	bg, err := colorFromName(c.Bg)
	if err != nil {
		return table.Cell{}, err
	}
	if c.Span < 0 {
		return table.Cell{}, fmt.Errorf("span must be non-negative, got %d", c.Span)
	}
	return table.Cell{
		Value:   c.Value,
		Align:   align,
		Style:   style,
		FgColor: fg,
		BgColor: bg,
		Span:    c.Span,
	}, nil
}

// BorderFromSpec resolves a border from a preset name or the eleven-glyph
// wire format.
func BorderFromSpec(spec string) (table.BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "", "unicode":
		return table.BorderUnicode, nil
	case "rounded":
		return table.BorderRounded, nil
	case "ascii":
		return table.BorderASCII, nil
	}
	return table.ParseBorderStyle(spec)
}

func alignFromName(name string) (table.Align, error) {
	switch name {
	case "", "left":
		return table.AlignLeft, nil
	case "right":
		return table.AlignRight, nil
	case "center":
		return table.AlignCenter, nil
	default:
		return 0, fmt.Errorf("align must be 'left', 'right', or 'center', got %q", name)
	}
}

func styleFromNames(names []string) (table.TextStyle, error) {
	var style table.TextStyle
	for _, name := range names {
		switch name {
		case "bold":
			style |= table.StyleBold
		case "italic":
			style |= table.StyleItalic
		case "underline":
			style |= table.StyleUnderline
		default:
			return 0, fmt.Errorf("style must be 'bold', 'italic', or 'underline', got %q", name)
		}
	}
	return style, nil
}

// colorNames maps document color names to the table package's palette.
var colorNames = map[string]table.Color{
	"":               table.ColorDefault,
	"default":        table.ColorDefault,
	"black":          table.ColorBlack,
	"red":            table.ColorRed,
	"green":          table.ColorGreen,
	"yellow":         table.ColorYellow,
	"blue":           table.ColorBlue,
	"magenta":        table.ColorMagenta,
	"cyan":           table.ColorCyan,
	"white":          table.ColorWhite,
	"bright-black":   table.ColorBrightBlack,
	"bright-red":     table.ColorBrightRed,
	"bright-green":   table.ColorBrightGreen,
	"bright-yellow":  table.ColorBrightYellow,
	"bright-blue":    table.ColorBrightBlue,
	"bright-magenta": table.ColorBrightMagenta,
	"bright-cyan":    table.ColorBrightCyan,
	"bright-white":   table.ColorBrightWhite,
}

func colorFromName(name string) (table.Color, error) {
	color, ok := colorNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown color %q", name)
	}
	return color, nil
}
