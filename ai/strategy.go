package ai

import "math/rand"

// Strategy biases candidate scoring toward one concern
type Strategy uint8

const (
	Survival Strategy = iota
	Length
	Aggressive
	ItemHunt
)

var strategyNames = [...]string{"survival", "length", "aggressive", "item"}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// Weights multiply the scoring terms of a candidate
type Weights struct {
	Space  float64
	Risk   float64
	Food   float64
	Item   float64
	Attack float64
}

var strategyWeights = [...]Weights{
	Survival:   {Space: 3, Risk: 3, Food: 1, Item: 0.5, Attack: 0},
	Length:     {Space: 1.5, Risk: 1, Food: 3, Item: 0.5, Attack: 0},
	Aggressive: {Space: 1.5, Risk: 0.5, Food: 1, Item: 0.5, Attack: 3},
	ItemHunt:   {Space: 1.5, Risk: 1, Food: 0.5, Item: 3, Attack: 0},
}

// WeightsFor returns the scoring weights of s
func WeightsFor(s Strategy) Weights {
	if int(s) < len(strategyWeights) {
		return strategyWeights[s]
	}
	return strategyWeights[Length]
}

func randomStrategy(rng *rand.Rand) Strategy {
	return Strategy(rng.Intn(len(strategyWeights)))
}

// fallbackStrategy draws from every strategy except Survival
func fallbackStrategy(rng *rand.Rand) Strategy {
	fallbacks := [...]Strategy{Length, Aggressive, ItemHunt}
	return fallbacks[rng.Intn(len(fallbacks))]
}

// ParseStrategy maps a strategy name to its tag; unknown names map to Length
func ParseStrategy(name string) Strategy {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i)
		}
	}
	return Length
}
