// Package event carries simulation notifications from the orchestrator to
// frontends: typed events, sinks, and a ring-buffer queue
package event

// Sink receives events synchronously from the tick goroutine
// Implementations must not block
type Sink interface {
	Notify(ev GameEvent)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ev GameEvent)

func (f SinkFunc) Notify(ev GameEvent) {
	f(ev)
}

// Discard drops every event
var Discard Sink = SinkFunc(func(GameEvent) {})

// Fanout delivers each event to every sink in order
type Fanout []Sink

func (f Fanout) Notify(ev GameEvent) {
	for _, s := range f {
		if s != nil {
			s.Notify(ev)
		}
	}
}

// Counter tallies events by type
// Read after the producer stopped, or from the producer goroutine
type Counter map[EventType]int

func (c Counter) Notify(ev GameEvent) {
	c[ev.Type]++
}

// ByName returns the tally keyed by event name
func (c Counter) ByName() map[string]int {
	out := make(map[string]int, len(c))
	for t, n := range c {
		out[GetEventName(t)] = n
	}
	return out
}
