package engine

import (
	"sync"
	"time"
)

// PausableClock is game time over a real Clock: real time minus every pause
type PausableClock struct {
	mu sync.RWMutex

	real Clock

	paused   bool
	pausedAt time.Time     // Real time of the pause in progress
	idle     time.Duration // Sum of finished pauses
}

// NewPausableClock creates a running clock over real; nil uses the system clock
func NewPausableClock(real Clock) *PausableClock {
	if real == nil {
		real = NewTimeProvider()
	}
	return &PausableClock{real: real}
}

// Now returns game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	at := pc.pausedAt
	if !pc.paused {
		at = pc.real.Now()
	}
	return at.Add(-pc.idle)
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	now := pc.real.Now()
	if pc.paused {
		pc.idle += now.Sub(pc.pausedAt)
	} else {
		pc.pausedAt = now
	}
	pc.paused = !pc.paused
	return pc.paused
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}
