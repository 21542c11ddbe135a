package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/connectfour/internal/board"
)

// PlayerRegistry maps board colors to their presentation.
type PlayerRegistry struct {
	players    map[board.Color]*PlayerDef
	emptyColor tcell.Color
	emptyGlyph rune
}

// NewPlayerRegistry creates a registry from loaded player definitions.
// Every board color must have a definition.
func NewPlayerRegistry(file PlayersFile) (*PlayerRegistry, error) {
	registry := &PlayerRegistry{
		players:    make(map[board.Color]*PlayerDef),
		emptyColor: tcell.ColorDarkGray,
		emptyGlyph: glyphRune(file.EmptyGlyph),
	}
	if file.EmptyColor != "" {
		color, err := ParseHexColor(file.EmptyColor)
		if err != nil {
			return nil, err
		}
		registry.emptyColor = color
	}

	for _, def := range file.Players {
		for _, c := range []board.Color{board.Blue, board.Red} {
			if def.ID == c.String() {
				registry.players[c] = &def
			}
		}
	}

	for _, c := range []board.Color{board.Blue, board.Red} {
		if registry.players[c] == nil {
			return nil, fmt.Errorf("no player definition for %s", c)
		}
	}
	return registry, nil
}

// LoadPlayerRegistry loads and creates a registry from the embedded players.json.
func LoadPlayerRegistry() (*PlayerRegistry, error) {
	file, err := LoadPlayers()
	if err != nil {
		return nil, err
	}
	return NewPlayerRegistry(file)
}

// ByColor returns the definition for a board color, or nil if not found.
func (r *PlayerRegistry) ByColor(c board.Color) *PlayerDef {
	return r.players[c]
}

// Name returns the display name for a board color, falling back to the color name.
func (r *PlayerRegistry) Name(c board.Color) string {
	if def := r.players[c]; def != nil && def.Name != "" {
		return def.Name
	}
	return c.String()
}

// EmptyStyle returns the glyph and color used for empty cells.
func (r *PlayerRegistry) EmptyStyle() (rune, tcell.Color) {
	return r.emptyGlyph, r.emptyColor
}

// Count returns the number of colors with a definition.
func (r *PlayerRegistry) Count() int {
	return len(r.players)
}
