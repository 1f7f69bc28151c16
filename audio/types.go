// Package audio synthesizes short effect tones for match events and plays them
// through the beep speaker
package audio

import "errors"

// Sound represents one synthesized effect
type Sound int

const (
	SoundEat       Sound = iota // Food consumed
	SoundBlocked                // Bounce off an obstacle
	SoundPenetrate              // Penetrate charge spent
	SoundItem                   // Revive or penetrate item picked up
	SoundRevive                 // Agent respawned
	SoundDeath                  // Agent died
	SoundShrink                 // Arena shrunk
	SoundGameOver               // Match ended
	soundCount
)

var soundNames = [soundCount]string{
	SoundEat:       "eat",
	SoundBlocked:   "blocked",
	SoundPenetrate: "penetrate",
	SoundItem:      "item",
	SoundRevive:    "revive",
	SoundDeath:     "death",
	SoundShrink:    "shrink",
	SoundGameOver:  "game_over",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSound resolves a sound by name
func ParseSound(name string) (Sound, bool) {
	for i, n := range soundNames {
		if n == name {
			return Sound(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrDisabled       = errors.New("audio disabled")
	ErrNotInitialized = errors.New("audio not initialized")
)
