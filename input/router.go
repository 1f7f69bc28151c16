package input

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/engine"
)

// Game is the match surface intents act on
type Game interface {
	SetIntent(id int, d core.Direction) error
	ToggleAutopilot(id int) (bool, error)
	Reset()
}

// Controls are frontend toggles owned by the play loop
type Controls interface {
	TogglePause() bool
	ToggleSound() bool
}

// Router applies translated intents to the game and frontend controls
type Router struct {
	keys     *KeyTable
	game     Game
	controls Controls
	logger   *slog.Logger
}

// NewRouter creates a router; nil keys uses DefaultKeyTable, nil logger discards
func NewRouter(keys *KeyTable, game Game, controls Controls, logger *slog.Logger) *Router {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Router{keys: keys, game: game, controls: controls, logger: logger}
}

// HandleKey translates and applies one key event
func (r *Router) HandleKey(ev *tcell.EventKey) (running bool, msg string) {
	return r.Handle(r.keys.Translate(ev))
}

// Handle applies an intent
// Returns running=false on quit and a short status line for the HUD, empty when nothing to say
func (r *Router) Handle(in Intent) (running bool, msg string) {
	switch in.Type {
	case IntentQuit:
		return false, ""

	case IntentMove:
		err := r.game.SetIntent(in.Seat, in.Direction)
		switch {
		case err == nil, errors.Is(err, engine.ErrReverseDirection), errors.Is(err, engine.ErrGameOver):
			// Reverse requests are dropped without feedback
		case errors.Is(err, engine.ErrUnknownAgent):
			msg = fmt.Sprintf("no seat %d in this match", in.Seat)
		case errors.Is(err, engine.ErrAgentDead):
			msg = fmt.Sprintf("P%d is dead", in.Seat)
		case errors.Is(err, engine.ErrNotHuman):
			msg = fmt.Sprintf("P%d is an ai seat", in.Seat)
		case errors.Is(err, engine.ErrAutopilot):
			msg = fmt.Sprintf("P%d is on autopilot", in.Seat)
		default:
			r.logger.Debug("intent rejected", "seat", in.Seat, "direction", in.Direction.String(), "error", err)
		}

	case IntentToggleAutopilot:
		on, err := r.game.ToggleAutopilot(in.Seat)
		switch {
		case errors.Is(err, engine.ErrNotHuman):
			msg = fmt.Sprintf("P%d is an ai seat", in.Seat)
		case err != nil:
			msg = fmt.Sprintf("no seat %d in this match", in.Seat)
		case on:
			msg = fmt.Sprintf("P%d autopilot on", in.Seat)
		default:
			msg = fmt.Sprintf("P%d autopilot off", in.Seat)
		}

	case IntentPause:
		if r.controls != nil && r.controls.TogglePause() {
			msg = "paused"
		}

	case IntentToggleSound:
		if r.controls != nil {
			msg = "sound off"
			if r.controls.ToggleSound() {
				msg = "sound on"
			}
		}

	case IntentReset:
		r.game.Reset()
		msg = "new match"
	}

	if in.Type != IntentNone {
		r.logger.Debug("intent", "type", in.Type.String(), "seat", in.Seat, "msg", msg)
	}
	return true, msg
}
