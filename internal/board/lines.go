package board

import "iter"

// Line is a straight sequence of cells read from the grid.
type Line = iter.Seq[Cell]

// findRun returns the color of the first RunLength consecutive same-colored
// cells in line.
func findRun(line Line) (Color, bool) {
	var prev Cell
	count := 0
	for cell := range line {
		if cell == Empty {
			prev, count = Empty, 0
			continue
		}
		if cell == prev {
			count++
		} else {
			prev, count = cell, 1
		}
		if count == RunLength {
			return Color(cell), true
		}
	}
	return 0, false
}

// walk yields cells starting at (row, col) and stepping by (dRow, dCol)
// until it leaves the grid.
func (b *Board) walk(row, col, dRow, dCol int) Line {
	return func(yield func(Cell) bool) {
		for r, c := row, col; r >= 0 && r < Rows && c >= 0 && c < Columns; r, c = r+dRow, c+dCol {
			if !yield(b.grid[r][c]) {
				return
			}
		}
	}
}

// rows yields each row left to right.
func (b *Board) rows() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for row := range Rows {
			if !yield(b.walk(row, 0, 0, 1)) {
				return
			}
		}
	}
}

// columns yields each column top to bottom.
func (b *Board) columns() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for col := range Columns {
			if !yield(b.walk(0, col, 1, 0)) {
				return
			}
		}
	}
}

// diagonals yields every diagonal long enough to hold a run, in both
// orientations. Diagonals start on the top row or on the edge column they
// run away from, so each one is yielded once at its full length.
func (b *Board) diagonals() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		// Down-right, starting on the left edge.
		for row := 0; row <= Rows-RunLength; row++ {
			if !yield(b.walk(row, 0, 1, 1)) {
				return
			}
		}
		// Down-right, starting on the top row.
		for col := 1; col <= Columns-RunLength; col++ {
			if !yield(b.walk(0, col, 1, 1)) {
				return
			}
		}
		// Down-left, starting on the right edge.
		for row := 0; row <= Rows-RunLength; row++ {
			if !yield(b.walk(row, Columns-1, 1, -1)) {
				return
			}
		}
		// Down-left, starting on the top row.
		for col := RunLength - 1; col < Columns-1; col++ {
			if !yield(b.walk(0, col, 1, -1)) {
				return
			}
		}
	}
}
