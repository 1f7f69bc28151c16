// Package status holds live simulation metrics as lock-free atomics and bridges
// them to Prometheus
package status

import "sync/atomic"

// Metric keys written by the engine
const (
	KeyTicks       = "engine.ticks"
	KeyAlive       = "arena.alive"
	KeyGridSize    = "arena.grid_size"
	KeySpeedLevel  = "arena.speed_level"
	KeyPickups     = "arena.pickups"
	KeyEaten       = "arena.food_eaten"
	KeyDeaths      = "arena.deaths"
	KeyRevives     = "arena.revives"
	KeyPenetrates  = "arena.penetrations"
	KeyBlocked     = "arena.blocked"
	KeyTopScore    = "arena.top_score"
	KeyTickSeconds = "engine.tick_seconds"
	KeyElapsed     = "arena.elapsed_seconds"
	KeyGameOver    = "arena.game_over"
	KeyPaused      = "engine.paused"
	KeyMatchID     = "match.id"
)

// Registry is the central metrics facade
// The engine caches pointers at construction; ticks write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every numeric metric into a plain map, bools as 0/1
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = float64(v.Load()) })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out[k] = 0
		if v.Load() {
			out[k] = 1
		}
	})
	return out
}
