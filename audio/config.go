package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/snakearena/parameter"
)

// Config holds volume and rate settings
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundCount]float64
}

// DefaultConfig returns audio enabled at moderate volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	cfg.EffectVolumes[SoundBlocked] = 0.6
	cfg.EffectVolumes[SoundPenetrate] = 0.8
	return cfg
}

// LoadConfig loads audio configuration from environment variables over defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("SNAKEARENA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100, stored as 0.0-1.0
	if volume := os.Getenv("SNAKEARENA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-effect volumes as a JSON object keyed by sound name
	if effectVols := os.Getenv("SNAKEARENA_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if s, ok := ParseSound(name); ok {
					cfg.EffectVolumes[s] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("SNAKEARENA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume returns the effective linear gain for s
func (c *Config) volume(s Sound) float64 {
	if s < 0 || s >= soundCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
