package table

import (
	"io"
	"log/slog"
	"reflect"
	"testing"
)

func mustPlace(t *testing.T, row Row, idx, columns int) renderRow {
	t.Helper()
	rr, err := placeRow(row, idx, columns)
	if err != nil {
		t.Fatalf("placeRow: %v", err)
	}
	return rr
}

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func TestPlanWidths_Natural(t *testing.T) {
	header := mustPlace(t, coerceRow([]any{"Name", "Age", "Country"}), -1, 3)
	body := mustPlace(t, coerceRow([]any{"John Doe", 30, "United States"}), 0, 3)

	got := planWidths([]renderRow{header, body}, 3, DefaultOptions(), 0)
	want := []int{10, 5, 15}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("planWidths = %v, want %v", got, want)
	}
}

func TestPlanWidths_SpanWidensRightmostMember(t *testing.T) {
	header := mustPlace(t, coerceRow([]any{"A", "B", "CC"}), -1, 3)
	body := mustPlace(t, Row{
		{Value: "0123456789", Span: 2},
		{Value: "x"},
	}, 0, 3)

	got := planWidths([]renderRow{header, body}, 3, DefaultOptions(), 0)
	want := []int{3, 8, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("planWidths = %v, want %v", got, want)
	}
}

func TestPlanWidths_MinWidth(t *testing.T) {
	tests := []struct {
		name     string
		minWidth int
		want     []int
	}{
		{"below natural", 5, []int{4, 4}},
		{"even growth", 17, []int{7, 7}},
		{"remainder to last column", 16, []int{6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.MinWidth = tt.minWidth
			row := mustPlace(t, coerceRow([]any{"ab", "cd"}), 0, 2)

			got := planWidths([]renderRow{row}, 2, opts, 0)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("planWidths = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanWidths_TitleGrowsLastColumn(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = "0123456789"
	row := mustPlace(t, coerceRow([]any{"A", "B", "C"}), 0, 3)

	got := planWidths([]renderRow{row}, 3, opts, 0)
	want := []int{3, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("planWidths = %v, want %v", got, want)
	}
}

func TestPlanWidths_ShrinkProportional(t *testing.T) {
	row := mustPlace(t, coerceRow([]any{"0123456789", "0123"}), 0, 2)

	got := planWidths([]renderRow{row}, 2, DefaultOptions(), 15)
	want := []int{7, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("planWidths = %v, want %v", got, want)
	}
	if total := totalWidth(got); total != 15 {
		t.Errorf("totalWidth = %d, want 15", total)
	}
}

func TestPlanWidths_MaxWidthActsAsBudget(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxWidth = 15
	row := mustPlace(t, coerceRow([]any{"0123456789", "0123"}), 0, 2)

	got := planWidths([]renderRow{row}, 2, opts, 20)
	if total := totalWidth(got); total != 15 {
		t.Errorf("totalWidth = %d, want 15 (MaxWidth tighter than available width)", total)
	}
}

func TestPlanWidths_FloorOverflow(t *testing.T) {
	row := mustPlace(t, coerceRow([]any{"0123456789", "0123"}), 0, 2)

	got := planWidths([]renderRow{row}, 2, quietOptions(), 5)
	want := []int{3, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("planWidths = %v, want floors %v", got, want)
	}
}

func TestPlanWidths_BlockContentSetsFloor(t *testing.T) {
	inner := New(DefaultOptions())
	if err := inner.AddRow("a"); err != nil {
		t.Fatalf("AddRow error: %v", err)
	}
	row := mustPlace(t, Row{{Value: inner}}, 0, 1)

	got := planWidths([]renderRow{row}, 1, quietOptions(), 5)
	want := []int{7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("planWidths = %v, want %v (block content must keep its width)", got, want)
	}
}

func TestPlanWidths_NoColumns(t *testing.T) {
	if got := planWidths(nil, 0, DefaultOptions(), 0); got != nil {
		t.Errorf("planWidths with no columns = %v, want nil", got)
	}
}
