package engine

import "github.com/lixenwraith/snakearena/agent"

// Summary is the end-of-run report written by headless runs
type Summary struct {
	MatchID        string         `json:"match_id"`
	Ticks          int64          `json:"ticks"`
	ElapsedSeconds float64        `json:"elapsed_seconds"`
	GridSize       int            `json:"grid_size"`
	SpeedLevel     int            `json:"speed_level"`
	Over           bool           `json:"over"`
	WinnerID       int            `json:"winner_id"`
	WinnerScore    int            `json:"winner_score"`
	Agents         []AgentSummary `json:"agents"`
	Events         map[string]int `json:"events,omitempty"`
}

// AgentSummary is the per-seat result
type AgentSummary struct {
	ID     int    `json:"id"`
	Kind   string `json:"kind"`
	Alive  bool   `json:"alive"`
	Score  int    `json:"score"`
	Length int    `json:"length"`
}

// Summarize condenses a State into a Summary
func Summarize(s State) Summary {
	out := Summary{
		MatchID:        s.MatchID,
		Ticks:          s.Tick,
		ElapsedSeconds: s.Elapsed.Seconds(),
		GridSize:       s.GridSize,
		SpeedLevel:     s.SpeedLevel,
		Over:           s.Over,
		WinnerID:       s.WinnerID,
		WinnerScore:    s.WinnerScore,
		Agents:         make([]AgentSummary, 0, len(s.Agents)),
	}
	for _, a := range s.Agents {
		kind := a.Kind.String()
		if a.Kind == agent.Human && a.Autopilot {
			kind += "+autopilot"
		}
		out.Agents = append(out.Agents, AgentSummary{
			ID:     a.ID,
			Kind:   kind,
			Alive:  a.Alive,
			Score:  a.Score,
			Length: a.Length,
		})
	}
	return out
}
