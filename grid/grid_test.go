package grid_test

import (
	"testing"

	"github.com/catalystneuro/ndx-anatomical-localization/grid"
)

func TestShape_StringAndEqual(t *testing.T) {
	if got := (grid.Shape{5, 5}).String(); got != "(5, 5)" {
		t.Fatalf("got %q", got)
	}
	if got := (grid.Shape{3}).String(); got != "(3,)" {
		t.Fatalf("got %q", got)
	}
	if (grid.Shape{4, 5}).Equal(grid.Shape{5, 5}) {
		t.Fatalf("expected mismatch")
	}
	if (grid.Shape{5, 5}).Equal(grid.Shape{5, 5, 3}) {
		t.Fatalf("expected rank mismatch")
	}
	if n := (grid.Shape{2, 3, 4}).Size(); n != 24 {
		t.Fatalf("size=%d", n)
	}
}

func TestGrid_NewAndAt(t *testing.T) {
	g, err := grid.New(2, 3, []float64{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if g.At(1, 2) != 5 || g.At(0, 1) != 1 {
		t.Fatalf("unexpected values: %v", g.Rows())
	}
	if !g.Shape().Equal(grid.Shape{2, 3}) {
		t.Fatalf("shape=%v", g.Shape())
	}
	if g.InBounds(2, 0) || g.InBounds(0, -1) {
		t.Fatalf("expected out of bounds")
	}

	if _, err := grid.New(2, 2, []float64{1, 2, 3}); err == nil {
		t.Fatalf("expected size error")
	}
}

func TestGrid_FromRows(t *testing.T) {
	g, err := grid.FromRows([][]string{{"CA1", "CA3"}, {"DG", "CA1"}})
	if err != nil {
		t.Fatalf("from rows: %v", err)
	}
	if g.At(1, 0) != "DG" {
		t.Fatalf("got %q", g.At(1, 0))
	}
	if _, err := grid.FromRows([][]int{{1, 2}, {3}}); err == nil {
		t.Fatalf("expected ragged rows error")
	}
}

func TestGrid_Equal(t *testing.T) {
	a := grid.Fill(2, 2, 1.5)
	b := grid.MustNew(2, 2, []float64{1.5, 1.5, 1.5, 1.5})
	if !grid.Equal(a, b) {
		t.Fatalf("expected equal")
	}
	c := grid.MustNew(1, 4, []float64{1.5, 1.5, 1.5, 1.5})
	if grid.Equal(a, c) {
		t.Fatalf("different shapes must not compare equal")
	}
}
