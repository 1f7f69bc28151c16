package agent

import (
	"time"

	"github.com/lixenwraith/snakearena/parameter"
)

func (a *Agent) startBlink(now time.Time) {
	a.Blinking = true
	a.blinkStart = now
}

// UpdateEffects advances blink and penetration timers, called once per tick
// Blink is timed on the game clock; penetration counts ticks
func (a *Agent) UpdateEffects(now time.Time) {
	if a.Blinking && now.Sub(a.blinkStart) >= parameter.BlinkDuration {
		a.Blinking = false
	}

	if !a.Penetrating {
		return
	}
	if a.penetrateTicks > 0 {
		a.penetrateTicks--
		a.startBlink(now)
		return
	}
	a.Penetrating = false
}

// Opacity returns render opacity for the blink phase at now
func (a *Agent) Opacity(now time.Time) float64 {
	if !a.Blinking {
		return 1
	}
	phase := int(now.Sub(a.blinkStart) / parameter.BlinkPhase)
	if phase%2 == 0 {
		return 1
	}
	return parameter.BlinkDimAlpha
}
