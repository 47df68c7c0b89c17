package game

import "math"

// Bounds is the region an arrangement is centred in.
type Bounds struct {
	CX, CY float64
	W, H   float64
}

// Cell is one grid position, centred in its cell.
type Cell struct {
	X, Y float64
}

// Grid is the computed geometry for one arrangement.
type Grid struct {
	Cols, Rows int
	CellSize   float64
	IconSize   float64
	Width      float64
	Height     float64
	Cells      []Cell
}

const maxCellSize = 52

// GridLayout places n items row-major into a grid centred in bounds.
// Up to four items use a square-ish grid; five or more use two rows.
func GridLayout(n int, bounds Bounds) Grid {
	if n <= 0 {
		return Grid{}
	}

	var cols, rows int
	if n <= 4 {
		cols = int(math.Ceil(math.Sqrt(float64(n))))
		rows = int(math.Ceil(float64(n) / float64(cols)))
	} else {
		cols = int(math.Ceil(float64(n) / 2))
		rows = 2
	}

	cell := math.Min(
		math.Floor((bounds.W-20)/float64(cols)),
		math.Floor((bounds.H-24)/float64(rows)),
	)
	cell = math.Min(cell, maxCellSize)
	if cell < 0 {
		cell = 0
	}

	g := Grid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cell,
		IconSize: math.Round(cell * 0.72),
		Width:    float64(cols) * cell,
		Height:   float64(rows) * cell,
		Cells:    make([]Cell, 0, n),
	}
	originX := bounds.CX - g.Width/2 + cell/2
	originY := bounds.CY - g.Height/2 + cell/2
	for i := 0; i < n; i++ {
		col := i % cols
		row := i / cols
		g.Cells = append(g.Cells, Cell{
			X: originX + float64(col)*cell,
			Y: originY + float64(row)*cell,
		})
	}
	return g
}
