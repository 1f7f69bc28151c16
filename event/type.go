package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventEat signals food consumed by an agent
	// Trigger: orchestrator food pass | Payload: EatPayload
	EventEat EventType = iota + 1

	// EventBlocked signals a bounce off an obstacle without a usable charge
	// Trigger: agent advance | Payload: BlockedPayload
	EventBlocked

	// EventPenetrated signals a penetrate charge spent passing an obstacle
	// Trigger: agent advance | Payload: BlockedPayload
	EventPenetrated

	// EventRevived signals a successful relocation after a second block
	// Trigger: orchestrator revive pass | Payload: nil
	EventRevived

	// EventDied signals an agent removed from play
	// Trigger: agent advance, failed revive | Payload: nil
	EventDied

	// EventGameOver signals every agent dead
	// Trigger: orchestrator end of tick | Payload: GameOverPayload
	EventGameOver

	// EventItemCollected signals a revive or penetrate charge picked up
	// Trigger: orchestrator item pass | Payload: ItemPayload
	EventItemCollected

	// EventGridShrunk signals the arena shrink and speed step
	// Trigger: orchestrator shrink schedule | Payload: ShrinkPayload
	EventGridShrunk
)

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	AgentID int // Zero for arena-wide events
	Payload any
	Tick    int64
}
