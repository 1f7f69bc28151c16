package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snakearena/agent"
	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/engine"
	"github.com/lixenwraith/snakearena/pickup"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func sampleState() engine.State {
	return engine.State{
		MatchID:    "0f8fad5b-d9cb-469f-a165-70867728950e",
		Tick:       42,
		Elapsed:    4200 * time.Millisecond,
		GridSize:   10,
		SpeedLevel: 6,
		NextShrink: 10 * time.Second,
		Alive:      1,
		Total:      2,
		Agents: []engine.AgentState{
			{
				ID: 1, Kind: agent.Human, Alive: true, Opacity: 1, Score: 7, Length: 2,
				Body: []core.Point{{X: 2, Y: 2}, {X: 1, Y: 2}},
			},
			{
				ID: 2, Kind: agent.Autonomous, Alive: false, Opacity: 1, Score: 3, Phase: agent.StateDead,
				Body: []core.Point{{X: 7, Y: 7}},
			},
		},
		Pickups: []engine.PickupState{
			{Pickup: pickup.Pickup{Pos: core.Point{X: 5, Y: 5}, Kind: pickup.Food, Value: 4}, Remaining: 1},
			{Pickup: pickup.Pickup{Pos: core.Point{X: 0, Y: 9}, Kind: pickup.Revive}, Remaining: 0.5},
		},
	}
}

func TestDraw_Layout(t *testing.T) {
	screen := newScreen(t, 100, 30)
	NewView(screen).Draw(sampleState(), HUD{})

	// Border encloses a 10x10 grid two columns per cell
	assert.Equal(t, '┌', runeAt(screen, 1, 1))
	assert.Equal(t, '┘', runeAt(screen, 22, 12))

	// Head and body of agent 1
	assert.Equal(t, '@', runeAt(screen, 6, 4))
	assert.Equal(t, '█', runeAt(screen, 4, 4))
	assert.Equal(t, '█', runeAt(screen, 5, 4))

	// Pickups
	assert.Equal(t, '4', runeAt(screen, 12, 7))
	assert.Equal(t, '+', runeAt(screen, 2, 11))

	// Dead agents leave no body
	assert.Equal(t, ' ', runeAt(screen, 16, 9))

	assert.Contains(t, rowText(screen, 0), "tick 42")
	assert.Contains(t, rowText(screen, 0), "alive 1/2")
	assert.Contains(t, rowText(screen, 1), "players")
	assert.Contains(t, rowText(screen, 2), "P1")
	assert.Contains(t, rowText(screen, 3), "dead")
	assert.Contains(t, rowText(screen, 29), "q quit")
}

func TestDraw_TooSmall(t *testing.T) {
	screen := newScreen(t, 30, 5)
	NewView(screen).Draw(sampleState(), HUD{})
	assert.Contains(t, rowText(screen, 0), "terminal too small")
}

func TestDraw_HUD(t *testing.T) {
	screen := newScreen(t, 100, 30)
	NewView(screen).Draw(sampleState(), HUD{Paused: true, Message: "seat 1 is an ai seat"})
	assert.Contains(t, rowText(screen, 0), "PAUSED")
	assert.Contains(t, rowText(screen, 29), "seat 1 is an ai seat")
}

func TestDraw_GameOverBanner(t *testing.T) {
	screen := newScreen(t, 100, 30)
	s := sampleState()
	s.Over = true
	s.WinnerID, s.WinnerScore = 1, 7

	NewView(screen).Draw(s, HUD{})
	assert.Contains(t, rowText(screen, 2+5), "GAME OVER  winner P1  score 7")
}

func TestAgentStyleColor(t *testing.T) {
	a := engine.AgentState{ID: 3, Opacity: 1}
	assert.Equal(t, AgentColor(3), AgentStyleColor(a))

	a.Opacity = 0
	assert.Equal(t, RGBBackground, AgentStyleColor(a))

	a.Opacity = 1
	a.Penetrating = true
	assert.Equal(t, Lerp(AgentColor(3), RGBWhite, 0.5), AgentStyleColor(a))
}

func TestAgentColor_Wraps(t *testing.T) {
	assert.Equal(t, AgentColor(1), AgentColor(13))
	assert.Equal(t, RGBDim, AgentColor(0))
}

func TestLerp(t *testing.T) {
	a, b := RGB{0, 100, 200}, RGB{200, 100, 0}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, RGB{100, 100, 100}, Lerp(a, b, 0.5))
	assert.Equal(t, b, Lerp(a, b, 3))
	assert.Equal(t, RGB{255, 75, 0}, Scale(RGB{200, 50, 0}, 1.5))
}

func TestPanelLine(t *testing.T) {
	a := engine.AgentState{ID: 1, Kind: agent.Human, Alive: true, Score: 12, Length: 5, Revives: 1}
	assert.Contains(t, PanelLine(a), "human")

	a.Strategy = "length"
	assert.Contains(t, PanelLine(a), "auto:length")

	a.Kind = agent.Autonomous
	a.Penetrating = true
	line := PanelLine(a)
	assert.Contains(t, line, "ai:length")
	assert.Contains(t, line, "phase")
	assert.Contains(t, line, "R1")
}
