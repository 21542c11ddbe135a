package ui

import "github.com/gdamore/tcell/v2"

// KeyColumn returns the text a key press contributes as a column choice.
// Only printable keys count; parsing is left to the caller.
func KeyColumn(ev *tcell.EventKey) (string, bool) {
	if ev.Key() != tcell.KeyRune {
		return "", false
	}
	return string(ev.Rune()), true
}

// IsQuit reports whether the key ends the program.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
