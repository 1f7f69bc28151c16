package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the terminal redraw interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// DefaultSpeedLevel is the starting tick cadence level
	DefaultSpeedLevel = 6

	// MinSpeedLevel and MaxSpeedLevel bound the cadence table
	MinSpeedLevel = 1
	MaxSpeedLevel = 10
)

// speedLevelIntervals maps speed level 1..10 to tick cadence
var speedLevelIntervals = [MaxSpeedLevel + 1]time.Duration{
	0,
	100 * time.Millisecond,
	55 * time.Millisecond,
	40 * time.Millisecond,
	30 * time.Millisecond,
	25 * time.Millisecond,
	20 * time.Millisecond,
	17 * time.Millisecond,
	15 * time.Millisecond,
	12 * time.Millisecond,
	10 * time.Millisecond,
}

// TickInterval returns the tick cadence for a speed level, out-of-range levels use the default
func TickInterval(level int) time.Duration {
	if level < MinSpeedLevel || level > MaxSpeedLevel {
		return speedLevelIntervals[DefaultSpeedLevel]
	}
	return speedLevelIntervals[level]
}

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 512

	// EventBufferMask is the bitmask for fast modulo operations (512 - 1)
	EventBufferMask = 511
)
