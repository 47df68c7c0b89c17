package game

import (
	"math"
	"testing"
)

func TestGridLayoutShape(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		wantCols int
		wantRows int
	}{
		{name: "Two Items", n: 2, wantCols: 2, wantRows: 1},
		{name: "Three Items", n: 3, wantCols: 2, wantRows: 2},
		{name: "Four Items Square", n: 4, wantCols: 2, wantRows: 2},
		{name: "Five Items Two Rows", n: 5, wantCols: 3, wantRows: 2},
		{name: "Seven Items Two Rows", n: 7, wantCols: 4, wantRows: 2},
		{name: "Eight Items Two Rows", n: 8, wantCols: 4, wantRows: 2},
	}

	bounds := Bounds{CX: 200, CY: 150, W: 380, H: 220}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := GridLayout(tc.n, bounds)
			if g.Cols != tc.wantCols || g.Rows != tc.wantRows {
				t.Fatalf("grid %dx%d, want %dx%d", g.Cols, g.Rows, tc.wantCols, tc.wantRows)
			}
			if len(g.Cells) != tc.n {
				t.Fatalf("%d cells, want %d", len(g.Cells), tc.n)
			}
		})
	}
}

func TestGridLayoutCellCap(t *testing.T) {
	g := GridLayout(2, Bounds{CX: 500, CY: 500, W: 2000, H: 2000})
	if g.CellSize != maxCellSize {
		t.Fatalf("cell size %v on a huge panel, want cap %d", g.CellSize, maxCellSize)
	}

	tight := GridLayout(4, Bounds{CX: 50, CY: 50, W: 100, H: 100})
	if tight.CellSize > 40 {
		t.Fatalf("cell size %v exceeds the panel budget", tight.CellSize)
	}
}

func TestGridLayoutCentredRowMajor(t *testing.T) {
	bounds := Bounds{CX: 200, CY: 150, W: 380, H: 220}
	g := GridLayout(6, bounds)

	// Row-major: the first three cells share a row, left to right.
	if !(g.Cells[0].X < g.Cells[1].X && g.Cells[1].X < g.Cells[2].X) {
		t.Errorf("first row not left-to-right: %+v", g.Cells[:3])
	}
	if g.Cells[0].Y != g.Cells[2].Y {
		t.Errorf("first row not level: %v vs %v", g.Cells[0].Y, g.Cells[2].Y)
	}
	if g.Cells[3].Y <= g.Cells[0].Y {
		t.Errorf("second row not below the first")
	}

	// The cell centroid sits on the bounds centre.
	var sx, sy float64
	for _, c := range g.Cells {
		sx += c.X
		sy += c.Y
	}
	cx := sx / float64(len(g.Cells))
	cy := sy / float64(len(g.Cells))
	if math.Abs(cx-bounds.CX) > 1e-9 || math.Abs(cy-bounds.CY) > 1e-9 {
		t.Errorf("grid centroid (%v, %v), want (%v, %v)", cx, cy, bounds.CX, bounds.CY)
	}
}

func TestGridLayoutEmpty(t *testing.T) {
	g := GridLayout(0, Bounds{W: 100, H: 100})
	if len(g.Cells) != 0 {
		t.Fatalf("layout for zero items produced %d cells", len(g.Cells))
	}
}
