package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/multi-pong/input"
)

// specialKeys maps non-rune tcell keys to game keys
var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape: input.KeyEscape,
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
}

// runeKeys maps printable runes to game keys; both cases bind so Caps Lock does not matter
var runeKeys = map[rune]input.Key{
	'w': input.KeyW,
	'W': input.KeyW,
	's': input.KeyS,
	'S': input.KeyS,
}

// translateKey resolves a tcell key event to a game key, KeyNone when unbound
func translateKey(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		return runeKeys[ev.Rune()]
	}
	return specialKeys[ev.Key()]
}

// isInterrupt reports Ctrl+C, the terminal equivalent of closing the window
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 &&
		(ev.Rune() == 'c' || ev.Rune() == 'C')
}
