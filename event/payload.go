package event

// EatPayload carries the consumed food value
type EatPayload struct {
	Value int `json:"value"`
}

// BlockedPayload carries the obstacle classification of a blocked or penetrated move
type BlockedPayload struct {
	Obstacle string `json:"obstacle"` // wall, self or other
	Count    int    `json:"count"`    // Consecutive blocked ticks after this event
}

// ItemPayload carries the collected item kind
type ItemPayload struct {
	Kind string `json:"kind"` // revive or penetrate
}

// GameOverPayload carries the winner, zero WinnerID when no agent scored
type GameOverPayload struct {
	WinnerID int `json:"winner_id"`
	Score    int `json:"score"`
}

// ShrinkPayload carries the arena resize
type ShrinkPayload struct {
	From       int `json:"from"`
	To         int `json:"to"`
	SpeedLevel int `json:"speed_level"`
}
