package parameter

import "time"

// Arena dimensions and shrink schedule
const (
	InitialGridSize = 30
	MinGridSize     = 6
	MaxGridSize     = 120

	// ShrinkInterval is the game time between arena shrinks
	ShrinkInterval = 15 * time.Second

	// ShrinkStep is the number of cells removed from each side length per shrink
	ShrinkStep = 5
)

// Seats
const (
	MinPlayers     = 2
	MaxPlayers     = 12
	DefaultPlayers = 6

	// DefaultHumanSeats is the number of leading seats controlled by humans by default
	DefaultHumanSeats = 2

	// SeatMarginDivisor derives the start margin as gridSize / SeatMarginDivisor
	SeatMarginDivisor = 10
)
