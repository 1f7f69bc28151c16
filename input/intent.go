// Package input translates terminal key events into match intents
package input

import "github.com/lixenwraith/snakearena/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit            // q, Esc, Ctrl+C
	IntentPause           // Space
	IntentReset           // r
	IntentToggleSound     // m
	IntentMove            // WASD for seat 1, arrows for seat 2
	IntentToggleAutopilot // 1, 2
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentReset:
		return "reset"
	case IntentToggleSound:
		return "toggle_sound"
	case IntentMove:
		return "move"
	case IntentToggleAutopilot:
		return "toggle_autopilot"
	}
	return "none"
}

// Intent is one translated key press
type Intent struct {
	Type      IntentType
	Seat      int            // Target seat for Move and ToggleAutopilot
	Direction core.Direction // Move only
}
