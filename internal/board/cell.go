package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColumn is returned for column indices outside [0, Columns).
var ErrInvalidColumn = errors.New("invalid column number")

// Color identifies one of the two players.
type Color uint8

const (
	// Blue moves first.
	Blue Color = iota + 1
	// Red moves second.
	Red
)

// String returns the color name used in theme data and messages.
func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == Blue {
		return Red
	}
	return Blue
}

// Cell is a single grid position, either Empty or holding a color.
type Cell uint8

// Empty is the zero Cell.
const Empty Cell = 0

// Occupied returns the cell holding a piece of color c.
func Occupied(c Color) Cell {
	return Cell(c)
}

// Color returns the color of the piece in the cell, if any.
func (c Cell) Color() (Color, bool) {
	if c == Empty {
		return 0, false
	}
	return Color(c), true
}

// String returns "empty" or the piece color.
func (c Cell) String() string {
	if c == Empty {
		return "empty"
	}
	return Color(c).String()
}

// Column is a zero-based column index.
type Column int

// NewColumn returns n as a Column, or ErrInvalidColumn if it is out of range.
func NewColumn(n int) (Column, error) {
	col := Column(n)
	if err := col.validate(); err != nil {
		return 0, err
	}
	return col, nil
}

// ParseColumn parses user input such as "3" into a Column.
// Surrounding whitespace is ignored; anything other than one decimal digit is rejected.
func ParseColumn(s string) (Column, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, fmt.Errorf("%w: %q is not a single digit", ErrInvalidColumn, s)
	}
	return NewColumn(int(s[0] - '0'))
}

func (c Column) validate() error {
	if c < 0 || c >= Columns {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, int(c))
	}
	return nil
}
