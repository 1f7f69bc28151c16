package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive plays of the same sound
	MinSoundGap = 50 * time.Millisecond

	// AudioMaxVoices caps concurrently mixed effects; extra plays are dropped
	AudioMaxVoices = 8
)

// Eat sound: rising two-note chime
const (
	EatNote1Duration = 60 * time.Millisecond
	EatNote2Duration = 120 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatNote1Release  = 30 * time.Millisecond
	EatNote2Release  = 90 * time.Millisecond
)

// Blocked sound: short saw buzz
const (
	BlockedSoundDuration = 80 * time.Millisecond
	BlockedSoundAttack   = 5 * time.Millisecond
	BlockedSoundRelease  = 20 * time.Millisecond
)

// Penetrate sound: noise whoosh
const (
	PenetrateSoundDuration = 250 * time.Millisecond
	PenetrateSoundAttack   = 120 * time.Millisecond
	PenetrateSoundRelease  = 120 * time.Millisecond
)

// Item and revive sound: bell with overtone
const (
	BellSoundDuration           = 500 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 450 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Death sound: falling square tones
const (
	DeathNoteDuration = 120 * time.Millisecond
	DeathSoundAttack  = 5 * time.Millisecond
	DeathNoteRelease  = 80 * time.Millisecond
)

// Shrink sound: low rumble
const (
	ShrinkSoundDuration = 400 * time.Millisecond
	ShrinkSoundAttack   = 40 * time.Millisecond
	ShrinkSoundRelease  = 300 * time.Millisecond
)
