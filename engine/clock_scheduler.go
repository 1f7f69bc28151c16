package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Ticker is the match surface the scheduler drives
type Ticker interface {
	Tick() bool
	TickInterval() time.Duration
}

// ClockScheduler runs Tick at the current cadence on game time
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	game  Ticker
	clock *PausableClock

	tickCount atomic.Uint64

	// frames receives a signal after every tick; dropped when the reader lags
	frames chan struct{}
}

// NewClockScheduler creates a scheduler over game paced by clock
func NewClockScheduler(game Ticker, clock *PausableClock) *ClockScheduler {
	return &ClockScheduler{
		game:   game,
		clock:  clock,
		frames: make(chan struct{}, 1),
	}
}

// Frames returns the tick notification channel
func (cs *ClockScheduler) Frames() <-chan struct{} {
	return cs.frames
}

// TickCount returns ticks run since start
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// TogglePause flips pause and returns the new state
func (cs *ClockScheduler) TogglePause() bool {
	return cs.clock.Toggle()
}

// Paused reports the pause state
func (cs *ClockScheduler) Paused() bool {
	return cs.clock.IsPaused()
}

// Run ticks until ctx is done or the game ends
// Returns nil on game over, ctx.Err() on cancellation
func (cs *ClockScheduler) Run(ctx context.Context) error {
	interval := cs.game.TickInterval()
	nextTickDeadline := cs.clock.Now().Add(interval)

	// Reset discards a stale expiry, so the timer needs no draining
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			// Longer sleep while paused to save CPU
			sleepDuration = interval * 2
		} else {
			gameNow := cs.clock.Now()
			if !gameNow.Before(nextTickDeadline) {
				running := cs.game.Tick()
				cs.tickCount.Add(1)

				select {
				case cs.frames <- struct{}{}:
				default:
				}
				if !running {
					return nil
				}

				// Cadence may change after a shrink
				interval = cs.game.TickInterval()
				nextTickDeadline = nextTickDeadline.Add(interval)
				if gameNow.Sub(nextTickDeadline) > interval*2 {
					nextTickDeadline = gameNow.Add(interval)
				}

				sleepDuration = max(0, nextTickDeadline.Sub(cs.clock.Now()))
			} else {
				sleepDuration = nextTickDeadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
