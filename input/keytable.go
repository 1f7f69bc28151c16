package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakearena/core"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

func move(seat int, d core.Direction) Intent {
	return Intent{Type: IntentMove, Seat: seat, Direction: d}
}

// DefaultKeyTable returns the default bindings: WASD drives seat 1, arrows seat 2
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyUp:     move(2, core.Up),
			tcell.KeyDown:   move(2, core.Down),
			tcell.KeyLeft:   move(2, core.Left),
			tcell.KeyRight:  move(2, core.Right),
		},
		Runes: map[rune]Intent{
			'w': move(1, core.Up),
			's': move(1, core.Down),
			'a': move(1, core.Left),
			'd': move(1, core.Right),
			'q': {Type: IntentQuit},
			' ': {Type: IntentPause},
			'r': {Type: IntentReset},
			'm': {Type: IntentToggleSound},
			'1': {Type: IntentToggleAutopilot, Seat: 1},
			'2': {Type: IntentToggleAutopilot, Seat: 2},
		},
	}
}

// Lookup resolves a key, or a rune when key is tcell.KeyRune
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Intent {
	if key != tcell.KeyRune {
		return kt.SpecialKeys[key]
	}
	return kt.Runes[unicode.ToLower(r)]
}

// Translate resolves a key event
func (kt *KeyTable) Translate(ev *tcell.EventKey) Intent {
	return kt.Lookup(ev.Key(), ev.Rune())
}
