package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/snakearena/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped oscillator
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// createEat generates a rising two-note chime
func createEat(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(659.25, WaveSquare, parameter.EatNote1Duration, parameter.EatSoundAttack, parameter.EatNote1Release, rate),
		tone(987.77, WaveSquare, parameter.EatNote2Duration, parameter.EatSoundAttack, parameter.EatNote2Release, rate),
	)
}

// createBlocked generates a short harsh buzz
func createBlocked(rate beep.SampleRate) beep.Streamer {
	return tone(100, WaveSaw, parameter.BlockedSoundDuration, parameter.BlockedSoundAttack, parameter.BlockedSoundRelease, rate)
}

// createPenetrate generates a noise whoosh
func createPenetrate(rate beep.SampleRate) beep.Streamer {
	return tone(0, WaveNoise, parameter.PenetrateSoundDuration, parameter.PenetrateSoundAttack, parameter.PenetrateSoundRelease, rate)
}

// createBell generates a ding with an octave overtone
func createBell(freq float64, rate beep.SampleRate) beep.Streamer {
	fund := tone(freq, WaveSine, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, rate)
	over := tone(freq*2, WaveSine, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// createNotes plays equal-length square notes in sequence
func createNotes(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, WaveSquare, parameter.DeathNoteDuration, parameter.DeathSoundAttack, parameter.DeathNoteRelease, rate)
	}
	return beep.Seq(notes...)
}

// createShrink generates a low saw rumble
func createShrink(rate beep.SampleRate) beep.Streamer {
	return tone(55, WaveSaw, parameter.ShrinkSoundDuration, parameter.ShrinkSoundAttack, parameter.ShrinkSoundRelease, rate)
}

// Create returns a fresh finite streamer for s scaled by the configured volume
// Returns nil for an unknown sound
func Create(s Sound, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var st beep.Streamer
	switch s {
	case SoundEat:
		st = createEat(rate)
	case SoundBlocked:
		st = createBlocked(rate)
	case SoundPenetrate:
		st = createPenetrate(rate)
	case SoundItem:
		st = createBell(880, rate)
	case SoundRevive:
		st = createBell(1046.5, rate)
	case SoundDeath:
		st = createNotes(rate, 440, 330, 220)
	case SoundShrink:
		st = createShrink(rate)
	case SoundGameOver:
		st = createNotes(rate, 523.25, 659.25, 783.99, 1046.5)
	default:
		return nil
	}
	return newVolume(st, cfg.volume(s))
}
