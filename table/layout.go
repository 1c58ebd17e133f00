package table

import (
	"log/slog"

	"github.com/biswanathroul/pytable-formatter/internal/textwidth"
)

// Column widths here are interior widths: the space between two separator
// glyphs, which is the content area plus padding on each side. The content
// area of a column is its width minus 2*padding.

// spanFloor records a hard lower bound on a spanned region, set by block
// content that must never be squeezed below its own rendered width.
type spanFloor struct {
	col      int
	span     int
	required int
}

// planWidths computes the final interior width of every column. The pipeline
// runs in a fixed order: natural widths from single-column cells, widening
// for spanning cells, growth up to the effective minimum (min width, title,
// footer), then proportional shrinking down to the width budget. Shrinking
// honors a per-column floor; when even the floors overflow the budget the
// table is emitted overwide and a warning is logged.
func planWidths(rows []renderRow, columns int, opts Options, availableWidth int) []int {
	if columns == 0 {
		return nil
	}
	logger := opts.logger()
	pad2 := 2 * opts.Padding

	widths := make([]int, columns)
	floors := make([]int, columns)
	for c := range floors {
		floors[c] = pad2 + 1
	}

	var blockSpans []spanFloor

	// Natural widths from single-column cells.
	for _, row := range rows {
		for _, pc := range row.cells {
			if pc.span != 1 {
				continue
			}
			w := textwidth.Widest(pc.lines) + pad2
			if w > widths[pc.col] {
				widths[pc.col] = w
			}
			if pc.block && w > floors[pc.col] {
				floors[pc.col] = w
			}
		}
	}

	// Spanning cells widen their member columns. The deficit goes to the
	// rightmost member so the left columns stay compact.
	for _, row := range rows {
		for _, pc := range row.cells {
			if pc.span <= 1 {
				continue
			}
			required := textwidth.Widest(pc.lines) + pad2
			if region := spanRegion(widths, pc.col, pc.span); required > region {
				widths[pc.col+pc.span-1] += required - region
			}
			if pc.block {
				blockSpans = append(blockSpans, spanFloor{col: pc.col, span: pc.span, required: required})
			}
		}
	}

	// Title and footer demand room for their text plus a space and a fill
	// glyph on each side; they fold into the minimum width.
	effectiveMin := opts.MinWidth
	if opts.Title != "" {
		if w := textwidth.String(opts.Title) + 4; w > effectiveMin {
			effectiveMin = w
		}
	}
	if opts.Footer != "" {
		if w := textwidth.String(opts.Footer) + 4; w > effectiveMin {
			effectiveMin = w
		}
	}
	if total := totalWidth(widths); effectiveMin > 0 && total < effectiveMin {
		grow := effectiveMin - total
		per := grow / columns
		for c := range widths {
			widths[c] += per
		}
		widths[columns-1] += grow % columns
	}

	budget := 0
	if opts.MaxWidth > 0 {
		budget = opts.MaxWidth
	}
	if availableWidth > 0 && (budget == 0 || availableWidth < budget) {
		budget = availableWidth
	}
	if total := totalWidth(widths); budget > 0 && total > budget {
		shrinkWidths(widths, floors, total-budget, budget, logger)
	}

	// Shrinking may have squeezed a spanned region below its block content;
	// restore the region at the cost of the budget.
	for _, sf := range blockSpans {
		if region := spanRegion(widths, sf.col, sf.span); sf.required > region {
			widths[sf.col+sf.span-1] += sf.required - region
		}
	}

	return widths
}

// shrinkWidths removes deficit display cells from widths, cutting each column
// in proportion to its slack above the floor. Integer rounding leftovers come
// off the widest columns. When the combined slack cannot cover the deficit,
// every column drops to its floor and the overflow is logged.
func shrinkWidths(widths, floors []int, deficit, budget int, logger *slog.Logger) {
	slack := 0
	for c := range widths {
		if widths[c] > floors[c] {
			slack += widths[c] - floors[c]
		}
	}

	if slack <= deficit {
		for c := range widths {
			if widths[c] > floors[c] {
				widths[c] = floors[c]
			}
		}
		if slack < deficit {
			logger.Warn("layout floor exceeds width budget",
				slog.Int("budget", budget),
				slog.Int("width", totalWidth(widths)))
		}
		return
	}

	remaining := deficit
	for c := range widths {
		room := widths[c] - floors[c]
		if room <= 0 {
			continue
		}
		cut := deficit * room / slack
		if cut > room {
			cut = room
		}
		widths[c] -= cut
		remaining -= cut
	}
	for remaining > 0 {
		widest := -1
		for c := range widths {
			if widths[c] > floors[c] && (widest == -1 || widths[c] > widths[widest]) {
				widest = c
			}
		}
		if widest == -1 {
			break
		}
		widths[widest]--
		remaining--
	}
}

// spanRegion is the interior width a cell spanning columns [col, col+span)
// has available: the member widths plus the separators swallowed by the span.
func spanRegion(widths []int, col, span int) int {
	sum := 0
	for c := col; c < col+span && c < len(widths); c++ {
		sum += widths[c]
	}
	return sum + span - 1
}

// totalWidth is the full rendered line width: every column plus one
// separator between each pair and the two outer borders.
func totalWidth(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	return sum + len(widths) + 1
}
