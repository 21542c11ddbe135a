// Package board implements the Connect Four board state machine.
package board

import "iter"

const (
	// Rows is the number of rows in the grid. Row 0 is the top.
	Rows = 6
	// Columns is the number of columns in the grid.
	Columns = 7
	// RunLength is the number of consecutive pieces needed to win.
	RunLength = 4
)

// Board holds the grid and the turn order for one game.
type Board struct {
	grid  [Rows][Columns]Cell
	turns [2]Color // turns[0] moves next, turns[1] moved last
}

// New creates an empty board with Blue to move first.
func New() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears the grid and restores the initial turn order.
func (b *Board) Reset() {
	b.grid = [Rows][Columns]Cell{}
	b.turns = [2]Color{Blue, Red}
}

// IsColumnPlayable reports whether col has at least one empty cell.
func (b *Board) IsColumnPlayable(col Column) (bool, error) {
	if err := col.validate(); err != nil {
		return false, err
	}
	// The top cell fills last.
	return b.grid[0][col] == Empty, nil
}

// PlacePiece drops a piece of the current player's color into col.
// It returns false without changing the board when the column is full.
// PlacePiece does not rotate the turn.
func (b *Board) PlacePiece(col Column) (bool, error) {
	playable, err := b.IsColumnPlayable(col)
	if err != nil || !playable {
		return false, err
	}
	row := b.lowestEmptyRow(col)
	b.grid[row][col] = Occupied(b.CurrentPlayer())
	return true, nil
}

// lowestEmptyRow returns the highest row index with an empty cell in col, or -1.
func (b *Board) lowestEmptyRow(col Column) int {
	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][col] == Empty {
			return row
		}
	}
	return -1
}

// RotateTurn swaps the current and previous players.
func (b *Board) RotateTurn() {
	b.turns[0], b.turns[1] = b.turns[1], b.turns[0]
}

// CurrentPlayer returns the color to move next.
func (b *Board) CurrentPlayer() Color {
	return b.turns[0]
}

// PreviousPlayer returns the color that moved most recently.
func (b *Board) PreviousPlayer() Color {
	return b.turns[1]
}

// HasWin reports whether any row, column or diagonal holds a run of four.
func (b *Board) HasWin() bool {
	_, ok := b.Winner()
	return ok
}

// Winner returns the color of the first run found, checking rows, then
// columns, then diagonals. If both colors somehow hold a run, the first one
// scanned is reported.
func (b *Board) Winner() (Color, bool) {
	for _, lines := range []iter.Seq[Line]{b.rows(), b.columns(), b.diagonals()} {
		for line := range lines {
			if c, ok := findRun(line); ok {
				return c, true
			}
		}
	}
	return 0, false
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for col := range Columns {
		if b.grid[0][col] == Empty {
			return false
		}
	}
	return true
}

// IsTie reports whether the board is full without a winning run.
func (b *Board) IsTie() bool {
	return b.IsFull() && !b.HasWin()
}

// IsGameOver reports whether the game has been won or the board is full.
func (b *Board) IsGameOver() bool {
	return b.HasWin() || b.IsFull()
}

// Cell returns the cell at row, col. Out-of-range positions read as Empty.
func (b *Board) Cell(row, col int) Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return Empty
	}
	return b.grid[row][col]
}

// Grid returns a copy of the grid.
func (b *Board) Grid() [Rows][Columns]Cell {
	return b.grid
}

// PlayableColumns returns the columns that still accept a piece.
func (b *Board) PlayableColumns() []Column {
	cols := make([]Column, 0, Columns)
	for col := range Column(Columns) {
		if b.grid[0][col] == Empty {
			cols = append(cols, col)
		}
	}
	return cols
}

// Moves returns the number of pieces on the board.
func (b *Board) Moves() int {
	n := 0
	for row := range Rows {
		for col := range Columns {
			if b.grid[row][col] != Empty {
				n++
			}
		}
	}
	return n
}
