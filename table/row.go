package table

import (
	"strings"

	"github.com/biswanathroul/pytable-formatter/internal/textwidth"
)

// placedCell is a resolved cell fixed to its starting column.
type placedCell struct {
	resolvedCell
	col  int
	span int
}

// renderRow is one table row after resolution and placement: its cells tile
// the full column range, with trailing empty cells filling any columns the
// caller left out.
type renderRow struct {
	cells []placedCell
}

// placeRow resolves every cell of a row and assigns starting columns. Rows
// narrower than the table are padded with empty single-column cells so that
// rendering can treat all rows as full. The row index is -1 for the header.
func placeRow(row Row, rowIdx, columns int) (renderRow, error) {
	placed := renderRow{cells: make([]placedCell, 0, columns)}
	col := 0
	for i, c := range row {
		rc, err := resolveCell(c, rowIdx, i)
		if err != nil {
			return renderRow{}, err
		}
		placed.cells = append(placed.cells, placedCell{resolvedCell: rc, col: col, span: c.span()})
		col += c.span()
	}
	for ; col < columns; col++ {
		placed.cells = append(placed.cells, placedCell{
			resolvedCell: resolvedCell{lines: []string{""}},
			col:          col,
			span:         1,
		})
	}
	return placed, nil
}

// boundaryOpen reports whether the separator between columns c-1 and c is
// drawn in this row, i.e. the boundary is not swallowed by a spanning cell.
func (r renderRow) boundaryOpen(c int) bool {
	for _, pc := range r.cells {
		if pc.col < c && c < pc.col+pc.span {
			return false
		}
	}
	return true
}

// renderRowLines turns one placed row into its display lines. Every cell is
// wrapped to its final content width, the row height is the tallest cell,
// and shorter cells are filled with blank lines. Styling escapes wrap the
// content text only, never the padding or alignment fill, so color never
// bleeds into table chrome.
func renderRowLines(row renderRow, widths []int, opts Options) []string {
	pad := strings.Repeat(" ", opts.Padding)
	sep := string(opts.Border.Vertical)

	contentWidths := make([]int, len(row.cells))
	wrapped := make([][]string, len(row.cells))
	height := 1
	for i, pc := range row.cells {
		cw := spanRegion(widths, pc.col, pc.span) - 2*opts.Padding
		contentWidths[i] = cw
		if pc.block {
			wrapped[i] = pc.lines
		} else {
			wrapped[i] = wrapLines(pc.lines, cw)
		}
		if len(wrapped[i]) > height {
			height = len(wrapped[i])
		}
	}

	lines := make([]string, 0, height)
	for ln := 0; ln < height; ln++ {
		var b strings.Builder
		b.WriteString(sep)
		for i, pc := range row.cells {
			text := ""
			if ln < len(wrapped[i]) {
				text = wrapped[i][ln]
			}
			b.WriteString(pad)
			b.WriteString(renderContent(text, contentWidths[i], pc, opts))
			b.WriteString(pad)
			b.WriteString(sep)
		}
		lines = append(lines, b.String())
	}
	return lines
}

// renderContent fits one content line into its column. Block lines are
// placed as-is with trailing fill; plain lines are aligned and, when color
// is enabled, wrapped in the cell's styling escapes.
func renderContent(text string, contentW int, pc placedCell, opts Options) string {
	if pc.block {
		if gap := contentW - textwidth.String(text); gap > 0 {
			return text + strings.Repeat(" ", gap)
		}
		return text
	}
	left, right := alignGaps(text, contentW, pc.cell.Align)
	if opts.ColorEnabled && text != "" {
		text = styleText(text, pc.cell.Style, pc.cell.FgColor, pc.cell.BgColor)
	}
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// alignGaps splits the free space around a content line per its alignment.
// Centered content keeps the extra cell on the right when the gap is odd.
func alignGaps(text string, contentW int, align Align) (left, right int) {
	gap := contentW - textwidth.String(text)
	if gap <= 0 {
		return 0, 0
	}
	switch align {
	case AlignRight:
		return gap, 0
	case AlignCenter:
		return gap / 2, gap - gap/2
	default:
		return 0, gap
	}
}
