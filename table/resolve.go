package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// resolvedCell is a cell's content after formatting: the text to display as
// ordered lines, plus whether those lines are block content. Block lines
// (a nested table's rendered output) are placed verbatim and never re-wrapped
// or re-aligned; the enclosing column widens to fit them instead.
type resolvedCell struct {
	cell  Cell
	lines []string
	block bool
}

// resolveCell produces the display content for one cell. The row index is the
// zero-based body row, or -1 for the header row; both indices only serve
// error reporting.
func resolveCell(c Cell, row, col int) (resolvedCell, error) {
	if nested, ok := c.Value.(*Table); ok {
		rendered, err := nested.Render(0)
		if err != nil {
			return resolvedCell{}, &CellFormatError{Row: row, Col: col, Err: err}
		}
		return resolvedCell{
			cell:  c,
			lines: strings.Split(rendered, "\n"),
			block: true,
		}, nil
	}

	var text string
	var err error
	if c.Formatter != nil {
		text, err = c.Formatter(c.Value)
	} else {
		text, err = formatValue(c.Value)
	}
	if err != nil {
		return resolvedCell{}, &CellFormatError{Row: row, Col: col, Err: err}
	}

	return resolvedCell{
		cell:  c,
		lines: strings.Split(text, "\n"),
	}, nil
}

// formatValue is the default stringification, a closed dispatch over the
// supported value kinds. Unsupported kinds are an error rather than a
// best-effort %v so that typos in caller data surface instead of rendering
// garbage.
func formatValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int8:
		return strconv.FormatInt(int64(val), 10), nil
	case int16:
		return strconv.FormatInt(int64(val), 10), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case time.Time:
		return val.Format(time.DateTime), nil
	case time.Duration:
		return val.String(), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("unsupported value kind %T", v)
	}
}
