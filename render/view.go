package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakearena/agent"
	"github.com/lixenwraith/snakearena/engine"
	"github.com/lixenwraith/snakearena/parameter"
	"github.com/lixenwraith/snakearena/pickup"
)

// HUD carries frontend-only state drawn alongside the match
type HUD struct {
	Paused  bool
	Sound   bool
	Message string // Replaces the key help line when set
}

// View draws match snapshots onto a tcell screen
// Not safe for concurrent use; the frame loop owns it
type View struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewView wraps an initialized screen
func NewView(screen tcell.Screen) *View {
	return &View{
		screen: screen,
		base:   tcell.StyleDefault.Foreground(RGBText.Color()).Background(RGBBackground.Color()),
	}
}

// Required returns the terminal size needed for a grid and its scoreboard
func Required(gridSize, players int) (w, h int) {
	w = parameter.LeftMargin + gridSize*parameter.CellWidth + 2 + parameter.PanelGap + parameter.PanelWidth
	h = parameter.TopMargin + max(gridSize+2, players+1) + parameter.FooterHeight
	return w, h
}

// Draw renders one frame and shows it
func (v *View) Draw(s engine.State, hud HUD) {
	v.screen.Fill(' ', v.base)

	w, h := v.screen.Size()
	needW, needH := Required(s.GridSize, s.Total)
	if w < needW || h < needH {
		v.text(0, 0, fmt.Sprintf("terminal too small: need %dx%d, have %dx%d", needW, needH, w, h), v.fg(RGBAlert))
		v.screen.Show()
		return
	}

	// Arena origin: top-left grid cell
	ox := parameter.LeftMargin + 1
	oy := parameter.TopMargin + 1
	arenaW := s.GridSize*parameter.CellWidth + 2

	v.drawHeader(s, hud)
	v.drawBorder(ox-1, oy-1, arenaW, s.GridSize+2)
	v.drawPickups(s, ox, oy)
	v.drawAgents(s, ox, oy)
	v.drawPanel(s, ox-1+arenaW+parameter.PanelGap, oy-1)
	v.drawFooter(hud, h-1)
	if s.Over {
		v.drawBanner(s, ox, oy+s.GridSize/2, s.GridSize*parameter.CellWidth)
	}

	v.screen.Show()
}

func (v *View) fg(c RGB) tcell.Style {
	return v.base.Foreground(c.Color())
}

// text writes str from (x,y) and returns the column after it
func (v *View) text(x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (v *View) drawHeader(s engine.State, hud HUD) {
	shrink := "--"
	if s.NextShrink > 0 {
		shrink = fmt.Sprintf("%4.1fs", s.NextShrink.Seconds())
	}
	id := s.MatchID
	if len(id) > 8 {
		id = id[:8]
	}
	line := fmt.Sprintf("snakearena %s  tick %d  %s  grid %dx%d  speed %d  shrink %s  alive %d/%d",
		id, s.Tick, formatElapsed(s.Elapsed), s.GridSize, s.GridSize, s.SpeedLevel, shrink, s.Alive, s.Total)
	x := v.text(0, 0, line, v.base)
	if hud.Sound {
		x = v.text(x+2, 0, "♫", v.fg(RGBDim))
	}
	if hud.Paused {
		v.text(x+2, 0, "PAUSED", v.fg(RGBAlert).Bold(true))
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(100 * time.Millisecond)
	return fmt.Sprintf("%02d:%04.1f", int(d.Minutes()), d.Seconds()-float64(int(d.Minutes())*60))
}

func (v *View) drawBorder(x, y, w, h int) {
	style := v.fg(RGBBorder)
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		v.screen.SetContent(i, y, '─', nil, style)
		v.screen.SetContent(i, bottom, '─', nil, style)
	}
	for j := y + 1; j < bottom; j++ {
		v.screen.SetContent(x, j, '│', nil, style)
		v.screen.SetContent(right, j, '│', nil, style)
	}
	v.screen.SetContent(x, y, '┌', nil, style)
	v.screen.SetContent(right, y, '┐', nil, style)
	v.screen.SetContent(x, bottom, '└', nil, style)
	v.screen.SetContent(right, bottom, '┘', nil, style)
}

// cell draws a grid cell as CellWidth columns, the first holding r
func (v *View) cell(ox, oy, gx, gy int, r, fill rune, style tcell.Style) {
	x := ox + gx*parameter.CellWidth
	v.screen.SetContent(x, oy+gy, r, nil, style)
	for i := 1; i < parameter.CellWidth; i++ {
		v.screen.SetContent(x+i, oy+gy, fill, nil, style)
	}
}

func (v *View) drawPickups(s engine.State, ox, oy int) {
	for _, p := range s.Pickups {
		bright := max(p.Remaining, parameter.MinPickupBrightness)
		var r rune
		var c RGB
		switch p.Kind {
		case pickup.Food:
			r, c = rune('0'+p.Value), RGBFood
		case pickup.Revive:
			r, c = parameter.ReviveChar, RGBRevive
		case pickup.Penetrate:
			r, c = parameter.PenetrateChar, RGBPenetrate
		}
		v.cell(ox, oy, p.Pos.X, p.Pos.Y, r, ' ', v.fg(Lerp(RGBBackground, c, bright)).Bold(true))
	}
}

// AgentStyleColor is the body color after penetration tint and blink dimming
func AgentStyleColor(a engine.AgentState) RGB {
	c := AgentColor(a.ID)
	if a.Penetrating {
		c = Lerp(c, RGBWhite, 0.5)
	}
	return Lerp(RGBBackground, c, a.Opacity)
}

func (v *View) drawAgents(s engine.State, ox, oy int) {
	for _, a := range s.Agents {
		if !a.Alive || len(a.Body) == 0 {
			continue
		}
		c := AgentStyleColor(a)
		body := v.fg(c)
		// Tail first so the head wins any overlap
		for i := len(a.Body) - 1; i > 0; i-- {
			p := a.Body[i]
			v.cell(ox, oy, p.X, p.Y, parameter.BodyChar, parameter.BodyChar, body)
		}
		head := a.Body[0]
		v.cell(ox, oy, head.X, head.Y, parameter.HeadChar, ' ', v.base.Foreground(RGBBlack.Color()).Background(c.Color()).Bold(true))
	}
}

// PanelLine formats one scoreboard row
func PanelLine(a engine.AgentState) string {
	ctrl := a.Kind.String()
	if a.Strategy != "" {
		if a.Kind == agent.Human {
			ctrl = "auto:" + a.Strategy
		} else {
			ctrl = "ai:" + a.Strategy
		}
	}
	status := ""
	switch {
	case !a.Alive:
		status = "dead"
	case a.Penetrating:
		status = "phase"
	case a.Phase == agent.StateBlocked:
		status = "bounce"
	}
	return fmt.Sprintf("P%-2d %-12s %4d L%-3d R%d X%d %s",
		a.ID, ctrl, a.Score, a.Length, a.Revives, a.Penetrates, status)
}

func (v *View) drawPanel(s engine.State, x, y int) {
	v.text(x, y, "players", v.fg(RGBDim))
	for i, a := range s.Agents {
		row := y + 1 + i
		style := v.base
		marker := '■'
		if !a.Alive {
			style = v.fg(RGBDim)
			marker = '□'
		}
		v.screen.SetContent(x, row, marker, nil, v.fg(AgentColor(a.ID)))
		v.text(x+2, row, PanelLine(a), style)
	}
}

func (v *View) drawFooter(hud HUD, y int) {
	if hud.Message != "" {
		v.text(0, y, hud.Message, v.fg(RGBAlert))
		return
	}
	v.text(0, y, "WASD/arrows move  1/2 autopilot  space pause  r reset  q quit", v.fg(RGBDim))
}

func (v *View) drawBanner(s engine.State, x, y, width int) {
	msg := "GAME OVER  no winner"
	if s.WinnerID > 0 {
		msg = fmt.Sprintf("GAME OVER  winner P%d  score %d", s.WinnerID, s.WinnerScore)
	}
	start := x + max(0, (width-len(msg))/2)
	v.text(start, y, msg, v.fg(RGBWhite).Background(RGBAlert.Color()).Bold(true))
}
