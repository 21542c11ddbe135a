package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stack places pieces bottom-up in col with the given colors, rotating the
// turn as needed so each piece gets the requested color.
func stack(t *testing.T, b *Board, col Column, colors ...Color) {
	t.Helper()
	for _, c := range colors {
		if b.CurrentPlayer() != c {
			b.RotateTurn()
		}
		ok, err := b.PlacePiece(col)
		require.NoError(t, err)
		require.True(t, ok, "column %d should accept a piece", col)
	}
}

func TestNewBoard(t *testing.T) {
	b := New()

	for row := range Rows {
		for col := range Columns {
			assert.Equal(t, Empty, b.Cell(row, col), "cell (%d,%d)", row, col)
		}
	}
	assert.False(t, b.IsGameOver())
	assert.False(t, b.HasWin())
	assert.False(t, b.IsFull())
	assert.Equal(t, Blue, b.CurrentPlayer())
	assert.Equal(t, Red, b.PreviousPlayer())
	assert.Zero(t, b.Moves())
}

func TestPlacePieceGravity(t *testing.T) {
	b := New()

	for i := range Rows {
		ok, err := b.PlacePiece(3)
		require.NoError(t, err)
		require.True(t, ok)

		row := Rows - 1 - i
		assert.Equal(t, Occupied(b.CurrentPlayer()), b.Cell(row, 3), "piece %d should land in row %d", i, row)
		if row > 0 {
			assert.Equal(t, Empty, b.Cell(row-1, 3))
		}
		b.RotateTurn()
	}
}

func TestPlacePieceUsesCurrentPlayer(t *testing.T) {
	b := New()
	b.RotateTurn()

	ok, err := b.PlacePiece(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Occupied(Red), b.Cell(Rows-1, 0))
	// Placing does not rotate.
	assert.Equal(t, Red, b.CurrentPlayer())
}

func TestFullColumn(t *testing.T) {
	b := New()
	for range Rows {
		_, err := b.PlacePiece(0)
		require.NoError(t, err)
		b.RotateTurn()
	}

	playable, err := b.IsColumnPlayable(0)
	require.NoError(t, err)
	assert.False(t, playable)

	before := b.Grid()
	ok, err := b.PlacePiece(0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, b.Grid(), "full column must not change the grid")

	assert.NotContains(t, b.PlayableColumns(), Column(0))
	assert.Len(t, b.PlayableColumns(), Columns-1)
}

func TestInvalidColumn(t *testing.T) {
	b := New()

	for _, col := range []Column{-1, 7, 8, 10} {
		_, err := b.IsColumnPlayable(col)
		assert.ErrorIs(t, err, ErrInvalidColumn, "IsColumnPlayable(%d)", col)

		_, err = b.PlacePiece(col)
		assert.ErrorIs(t, err, ErrInvalidColumn, "PlacePiece(%d)", col)
	}
	assert.Zero(t, b.Moves())

	for col := range Column(Columns) {
		playable, err := b.IsColumnPlayable(col)
		assert.NoError(t, err)
		assert.True(t, playable, "column %d", col)
	}
}

func TestRotateTurn(t *testing.T) {
	b := New()
	first := b.CurrentPlayer()

	b.RotateTurn()
	assert.Equal(t, first.Other(), b.CurrentPlayer())
	assert.Equal(t, first, b.PreviousPlayer())

	b.RotateTurn()
	assert.Equal(t, first, b.CurrentPlayer())
}

func TestVerticalRun(t *testing.T) {
	b := New()
	for range 3 {
		_, err := b.PlacePiece(0)
		require.NoError(t, err)
	}
	assert.False(t, b.HasWin(), "three in a column is not a win")

	_, err := b.PlacePiece(0)
	require.NoError(t, err)
	assert.True(t, b.HasWin(), "four in a column is a win")
	assert.True(t, b.IsGameOver())

	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, Blue, winner)
}

func TestHorizontalRun(t *testing.T) {
	tests := []struct {
		name  string
		cols  []Column
		isWin bool
	}{
		{"left edge", []Column{0, 1, 2, 3}, true},
		{"right edge", []Column{3, 4, 5, 6}, true},
		{"middle", []Column{1, 2, 3, 4}, true},
		{"gap", []Column{0, 1, 3, 4}, false},
		{"three", []Column{4, 5, 6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for _, col := range tt.cols {
				stack(t, b, col, Red)
			}
			assert.Equal(t, tt.isWin, b.HasWin())
		})
	}
}

func TestInterruptedRun(t *testing.T) {
	b := New()
	// B B R B B across the bottom row.
	for col, c := range []Color{Blue, Blue, Red, Blue, Blue} {
		stack(t, b, Column(col), c)
	}
	assert.False(t, b.HasWin())
}

func TestDiagonalWin(t *testing.T) {
	build := func(t *testing.T, skip int) *Board {
		b := New()
		// Blue ends on (5,0), (4,1), (3,2), (2,3); Red fills underneath.
		columns := [][]Color{
			{Blue},
			{Red, Blue},
			{Red, Red, Blue},
			{Red, Red, Red, Blue},
		}
		for col, colors := range columns {
			if col == skip {
				colors = colors[:len(colors)-1]
			}
			stack(t, b, Column(col), colors...)
		}
		return b
	}

	b := build(t, -1)
	assert.True(t, b.HasWin())
	winner, _ := b.Winner()
	assert.Equal(t, Blue, winner)

	for skip := range 4 {
		b := build(t, skip)
		assert.False(t, b.HasWin(), "missing the piece in column %d", skip)
	}
}

func TestEveryDiagonalWindow(t *testing.T) {
	directions := []struct {
		name       string
		dRow, dCol int
	}{
		{"down-right", 1, 1},
		{"down-left", 1, -1},
	}

	for _, d := range directions {
		for row := range Rows {
			for col := range Columns {
				endRow := row + d.dRow*(RunLength-1)
				endCol := col + d.dCol*(RunLength-1)
				if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Columns {
					continue
				}

				b := New()
				for k := range RunLength {
					b.grid[row+d.dRow*k][col+d.dCol*k] = Occupied(Red)
				}
				winner, ok := b.Winner()
				assert.True(t, ok, "%s run from (%d,%d)", d.name, row, col)
				assert.Equal(t, Red, winner)
			}
		}
	}
}

func TestDiagonalsCoverage(t *testing.T) {
	b := New()
	count := 0
	for line := range b.diagonals() {
		n := 0
		for range line {
			n++
		}
		assert.GreaterOrEqual(t, n, RunLength)
		count++
	}
	assert.Equal(t, 12, count)

	// Restartable.
	again := 0
	for range b.diagonals() {
		again++
	}
	assert.Equal(t, count, again)
}

func TestTie(t *testing.T) {
	b := New()
	// Colors alternate every row and every pair of columns, which leaves no
	// run longer than two in any direction.
	for col := range Columns {
		colors := make([]Color, 0, Rows)
		for row := Rows - 1; row >= 0; row-- {
			if (row+col/2)%2 == 0 {
				colors = append(colors, Blue)
			} else {
				colors = append(colors, Red)
			}
		}
		stack(t, b, Column(col), colors...)
	}

	assert.True(t, b.IsFull())
	assert.False(t, b.HasWin())
	assert.True(t, b.IsTie())
	assert.True(t, b.IsGameOver())
	assert.Equal(t, Rows*Columns, b.Moves())
	assert.Empty(t, b.PlayableColumns())
}

func TestFullAndWinning(t *testing.T) {
	b := New()
	for col := range Column(Columns) {
		for range Rows {
			_, err := b.PlacePiece(col)
			require.NoError(t, err)
		}
	}

	assert.True(t, b.IsFull())
	assert.True(t, b.HasWin())
	assert.False(t, b.IsTie(), "a winning board is not a tie")
	assert.True(t, b.IsGameOver())
}

func TestWinnerIgnoresTurnOrder(t *testing.T) {
	b := New()
	stack(t, b, 2, Red, Red, Red, Red)
	b.RotateTurn()
	b.RotateTurn()

	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, Red, winner)
}

func TestReset(t *testing.T) {
	b := New()
	stack(t, b, 0, Red, Blue)
	b.RotateTurn()

	b.Reset()
	assert.Zero(t, b.Moves())
	assert.Equal(t, Blue, b.CurrentPlayer())
	assert.Equal(t, Red, b.PreviousPlayer())
}

func TestCellOutOfRange(t *testing.T) {
	b := New()
	assert.Equal(t, Empty, b.Cell(-1, 0))
	assert.Equal(t, Empty, b.Cell(0, Columns))
	assert.Equal(t, Empty, b.Cell(Rows, 0))
}
