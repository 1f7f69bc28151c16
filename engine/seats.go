package engine

import (
	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/parameter"
)

// Seat is a start placement for one player id
type Seat struct {
	ID        int
	Head      core.Point
	Direction core.Direction
}

// Seats returns the start placements for the first n seats on a size x size grid
// Margin is size/10; placements ring the arena edges then fill the quarter points
func Seats(size, n int) []Seat {
	m := size / parameter.SeatMarginDivisor
	c := size / 2
	far := size - m - 1
	q1 := size / 4
	q3 := size * 3 / 4

	table := [parameter.MaxPlayers]Seat{
		{1, core.Point{X: m, Y: m}, core.Right},
		{2, core.Point{X: far, Y: far}, core.Left},
		{3, core.Point{X: far, Y: m}, core.Left},
		{4, core.Point{X: m, Y: far}, core.Right},
		{5, core.Point{X: c, Y: m}, core.Down},
		{6, core.Point{X: c, Y: far}, core.Up},
		{7, core.Point{X: q1, Y: q1}, core.Right},
		{8, core.Point{X: q3, Y: q1}, core.Left},
		{9, core.Point{X: q1, Y: q3}, core.Right},
		{10, core.Point{X: q3, Y: q3}, core.Left},
		{11, core.Point{X: m, Y: c}, core.Right},
		{12, core.Point{X: far, Y: c}, core.Left},
	}
	n = core.Clamp(n, 0, parameter.MaxPlayers)
	out := make([]Seat, n)
	copy(out, table[:n])
	return out
}
