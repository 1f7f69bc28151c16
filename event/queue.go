package event

import (
	"sync/atomic"

	"github.com/lixenwraith/snakearena/parameter"
)

// entry is one published event stamped with its write position
type entry struct {
	pos uint64
	ev  GameEvent
}

// EventQueue is a fixed-size ring of events between the tick goroutine and a frontend
// Push is lock-free and safe for several producers; Consume has a single reader
// A full ring overwrites its oldest events
type EventQueue struct {
	slots   [parameter.EventQueueSize]atomic.Pointer[entry]
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Notify implements Sink
func (q *EventQueue) Notify(ev GameEvent) {
	q.Push(ev)
}

// Push claims the next write position and publishes ev into its slot
// A slot is replaced whole, so readers never observe a partial event
func (q *EventQueue) Push(ev GameEvent) {
	pos := q.write.Add(1) - 1
	q.slots[pos&parameter.EventBufferMask].Store(&entry{pos: pos, ev: ev})

	// Drag the read index forward past overwritten entries
	for {
		r := q.read.Load()
		if pos+1 <= r+parameter.EventQueueSize {
			return
		}
		if q.read.CompareAndSwap(r, pos+1-parameter.EventQueueSize) {
			q.dropped.Add(pos + 1 - parameter.EventQueueSize - r)
			return
		}
	}
}

// Consume drains published events oldest first
// Stops early at a position whose writer has not finished
func (q *EventQueue) Consume() []GameEvent {
	for {
		r, w := q.read.Load(), q.write.Load()
		from := r
		if w-from > parameter.EventQueueSize {
			from = w - parameter.EventQueueSize
		}
		if w == from {
			return nil
		}

		out := make([]GameEvent, 0, w-from)
		lapped := false
		for pos := from; pos < w; pos++ {
			e := q.slots[pos&parameter.EventBufferMask].Load()
			if e == nil || e.pos < pos {
				break
			}
			if e.pos > pos {
				lapped = true
				break
			}
			out = append(out, e.ev)
		}
		if lapped {
			continue
		}

		if q.read.CompareAndSwap(r, from+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Dropped returns how many events were overwritten before being read
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
