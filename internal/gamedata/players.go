package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// PlayerDef describes how one player's pieces are presented.
type PlayerDef struct {
	ID    string `json:"id"`    // Matches board.Color.String() (e.g., "blue")
	Name  string `json:"name"`  // Display name (e.g., "Blue")
	Color string `json:"color"` // Hex color code (e.g., "#3B82F6")
	Glyph string `json:"glyph"` // Piece symbol (e.g., "⬤")
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PlayerDef) GlyphRune() rune {
	return glyphRune(p.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (p *PlayerDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(p.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// PlayersFile represents the structure of players.json.
type PlayersFile struct {
	Players    []PlayerDef `json:"players"`
	EmptyColor string      `json:"emptyColor"`
	EmptyGlyph string      `json:"emptyGlyph"`
}

// LoadPlayers loads player definitions from the embedded players.json file.
func LoadPlayers() (PlayersFile, error) {
	return Load[PlayersFile]("players.json")
}

func glyphRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}
