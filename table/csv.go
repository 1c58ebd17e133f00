package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// LoadCSV builds a table from CSV input. When header is true the first
// record becomes the header row and fixes the column count; remaining
// records are body rows. Ragged records are accepted as long as they do not
// exceed the header width, and render as under-filled rows.
func LoadCSV(r io.Reader, header bool, opts Options) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	t := New(opts)
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read csv: %w", err)
		}
		vals := make([]any, len(rec))
		for i, f := range rec {
			vals[i] = f
		}
		if first && header {
			if err := t.SetHeaders(vals...); err != nil {
				return nil, err
			}
		} else if err := t.AddRow(vals...); err != nil {
			return nil, err
		}
		first = false
	}
	return t, nil
}
