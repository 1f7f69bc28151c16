package parameter

import "time"

// Agent body
const (
	// InitialBodyLength is the body length at reset and after revive
	InitialBodyLength = 3

	// MaxBlockedCount is the consecutive blocked ticks that end a life
	MaxBlockedCount = 2

	// BounceGrowth is the growth and score added when a move bounces off an obstacle
	BounceGrowth = 3
)

// Blink and penetration effects
const (
	// BlinkPhase is one on/off half period of the blocked blink
	BlinkPhase = 300 * time.Millisecond

	// BlinkCount is the number of visible blinks per blocked event
	BlinkCount = 3

	// BlinkDuration is the full blink effect length
	BlinkDuration = BlinkPhase * BlinkCount * 2

	// BlinkDimAlpha is the opacity of the dim blink phase
	BlinkDimAlpha = 0.4

	// PenetrateBlinkTicks is the ticks of blink triggered by one penetration
	PenetrateBlinkTicks = 3
)

// Revive search
const (
	// ReviveMargin keeps respawned heads away from the arena edge
	ReviveMargin = 3

	// ReviveClearAhead is the free cells required in front of a respawned head
	ReviveClearAhead = 3
)
