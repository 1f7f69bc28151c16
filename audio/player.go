package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snakearena/event"
	"github.com/lixenwraith/snakearena/parameter"
)

// Player mixes effect sounds into the speaker and implements event.Sink
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [soundCount]time.Time

	// Speaker hooks, swapped in tests
	lock   func()
	unlock func()
	now    func() time.Time
}

// NewPlayer creates a player; Init must succeed before anything is heard
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
		now:    time.Now,
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled {
		return ErrDisabled
	}
	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	speaker.Close()
	p.initialized = false
}

// Play mixes in one instance of s
// Dropped when not initialized, when the same sound played within MinSoundGap,
// or when AudioMaxVoices are already sounding
func (p *Player) Play(s Sound) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || s < 0 || s >= soundCount {
		return false
	}
	now := p.now()
	if now.Sub(p.lastPlayed[s]) < parameter.MinSoundGap {
		return false
	}

	st := Create(s, p.cfg)
	if st == nil {
		return false
	}

	p.lock()
	defer p.unlock()
	if p.mixer.Len() >= parameter.AudioMaxVoices {
		return false
	}
	p.mixer.Add(st)
	p.lastPlayed[s] = now
	return true
}

// Notify plays the sound mapped to ev, if any
func (p *Player) Notify(ev event.GameEvent) {
	if s, ok := SoundFor(ev.Type); ok {
		p.Play(s)
	}
}

// SoundFor maps an event type to its effect
func SoundFor(t event.EventType) (Sound, bool) {
	switch t {
	case event.EventEat:
		return SoundEat, true
	case event.EventBlocked:
		return SoundBlocked, true
	case event.EventPenetrated:
		return SoundPenetrate, true
	case event.EventItemCollected:
		return SoundItem, true
	case event.EventRevived:
		return SoundRevive, true
	case event.EventDied:
		return SoundDeath, true
	case event.EventGridShrunk:
		return SoundShrink, true
	case event.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}
