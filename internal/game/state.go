// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying means moves are still being accepted.
	StatePlaying State = iota
	// StateWon means a player completed a run of four.
	StateWon
	// StateTie means the board filled up without a run.
	StateTie
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateTie:
		return "tie"
	default:
		return "unknown"
	}
}

// Over reports whether the match has ended.
func (s State) Over() bool {
	return s == StateWon || s == StateTie
}
