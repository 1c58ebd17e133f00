// Package table renders tabular data as aligned, optionally styled,
// fixed-width text blocks for terminal display.
//
// A table is built from an optional header row, body rows of heterogeneous
// values, and layout options (padding, width bounds, border glyphs, title,
// footer). Rendering computes column widths once per call, wraps content by
// display width, and assembles the bordered output:
//   - Cells may carry alignment, bold/italic/underline styling, foreground
//     and background colors, a column span, and a custom formatter.
//   - A cell value may itself be a *Table; it renders as an embedded block
//     that is placed verbatim, never re-wrapped.
//   - Width constraints shrink columns proportionally down to a readable
//     floor; content is wrapped, never truncated.
//
// Rendering is a pure function of the table and the available width: the
// same inputs produce byte-identical output, and concurrent renders of the
// same table need no coordination. Tables nested inside themselves are a
// caller error and will recurse without bound.
package table

import (
	"log/slog"
	"strings"

	"github.com/biswanathroul/pytable-formatter/internal/textwidth"
)

// Options control the layout and chrome of a table.
type Options struct {
	// Title is overlaid centered on the top border, flanked by one space on
	// each side. Empty means no title.
	Title string
	// Footer is overlaid centered on the bottom border, like Title.
	Footer string
	// MinWidth is the smallest total rendered width. Columns grow evenly to
	// reach it. Zero means no minimum.
	MinWidth int
	// MaxWidth caps the total rendered width. Columns shrink proportionally
	// to fit, down to a per-column floor. Zero means no maximum.
	MaxWidth int
	// Padding is the number of spaces on each side of cell content.
	// DefaultOptions sets 1.
	Padding int
	// Border supplies the eleven border glyphs. The zero value means
	// BorderUnicode.
	Border BorderStyle
	// ColorEnabled applies cell styling escapes when true. Disabled output
	// contains only printable characters.
	ColorEnabled bool
	// Logger receives layout degradation warnings. Nil means slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns the options for a plain table: Unicode borders,
// one space of padding, styling enabled, no width bounds.
func DefaultOptions() Options {
	return Options{
		Padding:      1,
		Border:       BorderUnicode,
		ColorEnabled: true,
	}
}

// normalized fills the zero values that have a declared default.
func (o Options) normalized() Options {
	if o.Border.isZero() {
		o.Border = BorderUnicode
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	return o
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Table is a grid of cells plus layout options. Build one with New, fill it
// with SetHeaders and AddRow, and produce text with Render or String. A
// Table is not safe for concurrent mutation, but concurrent Render calls on
// a table that is no longer being mutated are safe.
type Table struct {
	opts    Options
	headers Row
	rows    []Row
	columns int
}

// New returns an empty table with the given options.
func New(opts Options) *Table {
	return &Table{opts: opts}
}

// SetHeaders declares the header row and with it the table's column count
// (the sum of the header cells' spans). Body rows already added are
// re-validated against the new count; a row that no longer fits returns a
// *RowShapeError and leaves the table unchanged.
func (t *Table) SetHeaders(values ...any) error {
	row := coerceRow(values)
	cols := row.spanSum()
	for i, r := range t.rows {
		if r.spanSum() > cols {
			return &RowShapeError{Row: i, SpanSum: r.spanSum(), Columns: cols}
		}
	}
	t.headers = row
	t.columns = cols
	return nil
}

// AddRow appends one body row. Values may be raw payloads or Cell values.
// When headers are set the row's span sum must not exceed the declared
// column count; otherwise the column count grows to the widest row seen.
func (t *Table) AddRow(values ...any) error {
	row := coerceRow(values)
	if t.headers != nil && row.spanSum() > t.columns {
		return &RowShapeError{Row: len(t.rows), SpanSum: row.spanSum(), Columns: t.columns}
	}
	t.rows = append(t.rows, row)
	if t.headers == nil && row.spanSum() > t.columns {
		t.columns = row.spanSum()
	}
	return nil
}

// Render produces the table as one multi-line string with no trailing line
// break. availableWidth caps the total width (0 means unconstrained beyond
// MaxWidth); the engine never queries the terminal itself. A formatter
// failure or nested render failure aborts with an error; no partial output
// is returned. An empty table renders as the empty string.
func (t *Table) Render(availableWidth int) (string, error) {
	opts := t.opts.normalized()
	columns := t.columns
	if columns == 0 {
		return "", nil
	}

	var header *renderRow
	if t.headers != nil {
		hr, err := placeRow(t.headers, -1, columns)
		if err != nil {
			return "", err
		}
		header = &hr
	}
	body := make([]renderRow, 0, len(t.rows))
	for i, row := range t.rows {
		rr, err := placeRow(row, i, columns)
		if err != nil {
			return "", err
		}
		body = append(body, rr)
	}

	all := make([]renderRow, 0, len(body)+1)
	if header != nil {
		all = append(all, *header)
	}
	all = append(all, body...)
	if len(all) == 0 {
		return "", nil
	}
	widths := planWidths(all, columns, opts, availableWidth)

	first, last := all[0], all[len(all)-1]
	b := opts.Border
	var lines []string

	top := composeBorder(widths, b, b.TopLeft, b.TopRight, func(c int) rune {
		if first.boundaryOpen(c) {
			return b.TopJunction
		}
		return b.Horizontal
	})
	lines = append(lines, overlayCentered(top, opts.Title))

	if header != nil {
		lines = append(lines, renderRowLines(*header, widths, opts)...)
		if len(body) > 0 {
			sep := composeBorder(widths, b, b.LeftJunction, b.RightJunction, func(c int) rune {
				above, below := header.boundaryOpen(c), body[0].boundaryOpen(c)
				switch {
				case above && below:
					return b.Cross
				case above:
					return b.BottomJunction
				case below:
					return b.TopJunction
				default:
					return b.Horizontal
				}
			})
			lines = append(lines, string(sep))
		}
	}

	for _, rr := range body {
		lines = append(lines, renderRowLines(rr, widths, opts)...)
	}

	bottom := composeBorder(widths, b, b.BottomLeft, b.BottomRight, func(c int) rune {
		if last.boundaryOpen(c) {
			return b.BottomJunction
		}
		return b.Horizontal
	})
	lines = append(lines, overlayCentered(bottom, opts.Footer))

	return strings.Join(lines, "\n"), nil
}

// String renders the table with no width constraint. Render errors are
// returned as their message text, since the Stringer contract allows no
// error value.
func (t *Table) String() string {
	s, err := t.Render(0)
	if err != nil {
		return err.Error()
	}
	return s
}

// composeBorder builds one horizontal border line: the two end glyphs, a
// fill run per column, and a junction at each interior column boundary
// chosen by the caller (boundaries are counted 1..columns-1).
func composeBorder(widths []int, border BorderStyle, left, right rune, junction func(boundary int) rune) []rune {
	line := make([]rune, 0, totalWidth(widths))
	line = append(line, left)
	for c, w := range widths {
		for i := 0; i < w; i++ {
			line = append(line, border.Horizontal)
		}
		if c < len(widths)-1 {
			line = append(line, junction(c+1))
		}
	}
	line = append(line, right)
	return line
}

// overlayCentered lays text over the middle of a border line, flanked by one
// space on each side. The width planner reserves room for the overlay, so it
// normally replaces only fill glyphs; if the line was shrunk below the
// overlay's width anyway, the overlay wins and the line runs wide.
func overlayCentered(line []rune, text string) string {
	if text == "" {
		return string(line)
	}
	overlay := " " + text + " "
	ovWidth := textwidth.String(overlay)
	start := (len(line) - ovWidth) / 2
	if start < 1 {
		start = 1
	}
	var b strings.Builder
	for i := 0; i < len(line); {
		if i == start {
			b.WriteString(overlay)
			i += ovWidth
			continue
		}
		b.WriteRune(line[i])
		i++
	}
	return b.String()
}
