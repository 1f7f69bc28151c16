// Package config loads the operator-side YAML match file
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/snakearena/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid match config")

// Strategy names accepted in the strategies map
var StrategyNames = []string{"survival", "length", "aggressive", "item"}

// Match configures one match
type Match struct {
	Players    int   `yaml:"players"`
	HumanSeats int   `yaml:"human_seats"` // Leading seats driven by input, at most 2
	GridSize   int   `yaml:"grid_size"`
	SpeedLevel int   `yaml:"speed_level"`
	Seed       int64 `yaml:"seed"` // Zero picks a time-based seed

	Shrink bool `yaml:"shrink"`
	Sound  bool `yaml:"sound"`

	// MaxTicks bounds headless runs, zero runs until game over
	MaxTicks int `yaml:"max_ticks"`

	// Strategies pins the initial strategy per seat id
	Strategies map[int]string `yaml:"strategies"`
}

// Default returns the stock match: 6 players, 2 humans, 30x30, speed x6
func Default() Match {
	return Match{
		Players:    parameter.DefaultPlayers,
		HumanSeats: parameter.DefaultHumanSeats,
		GridSize:   parameter.InitialGridSize,
		SpeedLevel: parameter.DefaultSpeedLevel,
		Shrink:     true,
		Sound:      true,
	}
}

// Load reads path over Default; keys absent from the file keep their defaults
func Load(path string) (Match, error) {
	m := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read match config: %w", err)
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parse match config %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return m, err
	}
	return m, nil
}

// Validate checks ranges against the tuning constants
func (m Match) Validate() error {
	if m.Players < parameter.MinPlayers || m.Players > parameter.MaxPlayers {
		return fmt.Errorf("%w: players %d outside [%d,%d]", ErrInvalid, m.Players, parameter.MinPlayers, parameter.MaxPlayers)
	}
	if m.HumanSeats < 0 || m.HumanSeats > parameter.DefaultHumanSeats || m.HumanSeats > m.Players {
		return fmt.Errorf("%w: human_seats %d outside [0,%d]", ErrInvalid, m.HumanSeats, min(parameter.DefaultHumanSeats, m.Players))
	}
	if m.GridSize < parameter.MinGridSize || m.GridSize > parameter.MaxGridSize {
		return fmt.Errorf("%w: grid_size %d outside [%d,%d]", ErrInvalid, m.GridSize, parameter.MinGridSize, parameter.MaxGridSize)
	}
	if m.SpeedLevel < parameter.MinSpeedLevel || m.SpeedLevel > parameter.MaxSpeedLevel {
		return fmt.Errorf("%w: speed_level %d outside [%d,%d]", ErrInvalid, m.SpeedLevel, parameter.MinSpeedLevel, parameter.MaxSpeedLevel)
	}
	if m.MaxTicks < 0 {
		return fmt.Errorf("%w: max_ticks %d is negative", ErrInvalid, m.MaxTicks)
	}
	for seat, name := range m.Strategies {
		if seat < 1 || seat > m.Players {
			return fmt.Errorf("%w: strategy for unknown seat %d", ErrInvalid, seat)
		}
		if !validStrategy(name) {
			return fmt.Errorf("%w: seat %d strategy %q", ErrInvalid, seat, name)
		}
	}
	return nil
}

func validStrategy(name string) bool {
	for _, s := range StrategyNames {
		if s == name {
			return true
		}
	}
	return false
}
