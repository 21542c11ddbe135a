package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/connectfour/internal/board"
	"github.com/samdwyer/connectfour/internal/gamedata"
)

// Layout of the board on screen.
const (
	minOriginX = 1
	labelY     = 0
	gridY      = 1
	cellWidth  = 2
	boardWidth = (board.Columns-1)*cellWidth + 1

	// StatusY is the row of the status line.
	StatusY = gridY + board.Rows + 1
	// PromptY is the row of the input prompt.
	PromptY = StatusY + 1
)

// CellX returns the screen column where a board column was last drawn.
func (r *Renderer) CellX(col int) int {
	return r.originX + col*cellWidth
}

// CellY returns the screen row where a board row is drawn.
func CellY(row int) int {
	return gridY + row
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	players *gamedata.PlayerRegistry
	originX int
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, players *gamedata.PlayerRegistry) *Renderer {
	return &Renderer{screen: screen, players: players, originX: minOriginX}
}

// Render draws the board, a status line and a prompt. It only reads the board.
func (r *Renderer) Render(b *board.Board, status, prompt string) {
	r.screen.Clear()

	// Centre the board horizontally; messages stay left-aligned.
	width, _ := r.screen.Size()
	r.originX = max(minOriginX, (width-boardWidth)/2)

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for col := range board.Columns {
		r.screen.DrawText(r.CellX(col), labelY, strconv.Itoa(col), labelStyle)
	}

	for row := range board.Rows {
		for col := range board.Columns {
			glyph, style := r.cellStyle(b.Cell(row, col))
			r.screen.SetContent(r.CellX(col), CellY(row), glyph, style)
		}
	}

	r.RenderMessage(status, StatusY)
	r.RenderMessage(prompt, PromptY)

	r.screen.Show()
}

// cellStyle returns the glyph and style for a cell.
func (r *Renderer) cellStyle(cell board.Cell) (rune, tcell.Style) {
	color, ok := cell.Color()
	if !ok {
		glyph, fg := r.players.EmptyStyle()
		return glyph, tcell.StyleDefault.Foreground(fg)
	}

	def := r.players.ByColor(color)
	if def == nil {
		return '?', tcell.StyleDefault
	}
	return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor()).Bold(true)
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, y, msg, style)
}
