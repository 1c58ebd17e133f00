package table

// Formatter turns a cell value into display text. A formatter may return
// multi-line text; embedded newlines are treated as pre-wrapped line breaks.
// A formatter failure aborts the render with a *CellFormatError.
type Formatter func(value any) (string, error)

// Cell describes a single table entry: its value and how to display it.
//
// Cells are plain value descriptions; the engine never mutates them. A cell's
// Value may be any of the supported scalar kinds (see package documentation),
// a *Table to embed a nested table as block content, or anything a custom
// Formatter can handle.
type Cell struct {
	// Value is the display payload.
	Value any
	// Align controls horizontal alignment within the column.
	Align Align
	// Style is an optional set of text attributes.
	Style TextStyle
	// FgColor and BgColor are optional content colors. They wrap the content
	// text only, never the surrounding padding.
	FgColor Color
	BgColor Color
	// Span is the number of adjacent columns the cell occupies. Values below
	// one are treated as one.
	Span int
	// Formatter overrides the default stringification of Value. It is not
	// consulted for nested tables.
	Formatter Formatter
}

// span returns the effective column span, at least one.
func (c Cell) span() int {
	if c.Span < 1 {
		return 1
	}
	return c.Span
}

// Row is an ordered sequence of cells.
type Row []Cell

// spanSum returns the number of columns the row occupies.
func (r Row) spanSum() int {
	var sum int
	for _, c := range r {
		sum += c.span()
	}
	return sum
}

// coerceCell normalizes one row element into a Cell. Styled cells pass
// through, nested tables become block-valued cells, and any other value
// becomes a default-attribute cell around that raw value.
func coerceCell(v any) Cell {
	switch cv := v.(type) {
	case Cell:
		return cv
	case *Cell:
		if cv == nil {
			return Cell{}
		}
		return *cv
	default:
		return Cell{Value: v}
	}
}

// coerceRow normalizes a sequence of row elements into a Row.
func coerceRow(values []any) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = coerceCell(v)
	}
	return row
}
