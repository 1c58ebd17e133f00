package table

import "fmt"

// MalformedBorderStyleError reports a border style specification that does not
// contain exactly the eleven required glyph tokens.
type MalformedBorderStyleError struct {
	// Input is the offending specification string.
	Input string
	// Count is the number of tokens found.
	Count int
	// BadToken is set when a token was found but is not a single glyph.
	BadToken string
}

func (e *MalformedBorderStyleError) Error() string {
	if e.BadToken != "" {
		return fmt.Sprintf("table: malformed border style %q: token %q is not a single glyph", e.Input, e.BadToken)
	}
	return fmt.Sprintf("table: malformed border style %q: got %d glyph tokens, want %d", e.Input, e.Count, borderGlyphCount)
}

// RowShapeError reports a row whose cell spans add up to more columns than the
// table declares. It is returned at construction time (SetHeaders, AddRow,
// LoadCSV), never during rendering.
type RowShapeError struct {
	// Row is the zero-based body row index.
	Row int
	// SpanSum is the number of columns the row's cells occupy.
	SpanSum int
	// Columns is the table's declared column count.
	Columns int
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("table: row %d spans %d columns, table has %d", e.Row, e.SpanSum, e.Columns)
}

// CellFormatError reports a cell whose value could not be turned into display
// text, either because its formatter failed or because the value kind is not
// supported by the default formatting. It carries the cell's position and
// wraps the underlying cause.
type CellFormatError struct {
	// Row is the zero-based body row index, or -1 for the header row.
	Row int
	// Col is the zero-based cell index within the row.
	Col int
	// Err is the underlying failure.
	Err error
}

func (e *CellFormatError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("table: format header cell %d: %v", e.Col, e.Err)
	}
	return fmt.Sprintf("table: format cell %d of row %d: %v", e.Col, e.Row, e.Err)
}

func (e *CellFormatError) Unwrap() error {
	return e.Err
}
