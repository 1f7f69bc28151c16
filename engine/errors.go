package engine

import "errors"

var (
	ErrUnknownAgent     = errors.New("unknown agent")
	ErrAgentDead        = errors.New("agent is dead")
	ErrReverseDirection = errors.New("direction reverses current heading")
	ErrInvalidDirection = errors.New("direction is not a unit step")
	ErrNotHuman         = errors.New("agent is not a human seat")
	ErrAutopilot        = errors.New("seat is on autopilot")
	ErrGameOver         = errors.New("game over")
)
