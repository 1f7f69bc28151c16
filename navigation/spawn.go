package navigation

import "github.com/lixenwraith/snakearena/core"

// Spawn is a respawn placement: head cell and heading
type Spawn struct {
	Head      core.Point
	Direction core.Direction
}

// Body returns the length-cell body trailing behind the head, clamped into the grid
func (sp Spawn) Body(length, size int) []core.Point {
	cells := make([]core.Point, length)
	for i := range cells {
		cells[i] = core.Point{
			X: core.Clamp(sp.Head.X-sp.Direction.X*i, 0, size-1),
			Y: core.Clamp(sp.Head.Y-sp.Direction.Y*i, 0, size-1),
		}
	}
	return cells
}

// SafeSpawns scans the interior region (margin cells from each edge) for placements
// whose head, trailing body and ahead cells in front are in bounds and unblocked
// Scan order is row-major with headings in up, down, left, right order
func SafeSpawns(size, margin, bodyLength, ahead int, blocked Blocked) []Spawn {
	var out []Spawn
	inBounds := func(p core.Point) bool {
		return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
	}

	for y := margin; y < size-margin; y++ {
		for x := margin; x < size-margin; x++ {
			head := core.Point{X: x, Y: y}
			if blocked(head) {
				continue
			}
			for _, d := range core.Directions {
				if clearLine(head, d, 1, ahead, inBounds, blocked) &&
					clearLine(head, d.Reverse(), 1, bodyLength-1, inBounds, blocked) {
					out = append(out, Spawn{Head: head, Direction: d})
				}
			}
		}
	}
	return out
}

// clearLine checks cells from..to steps away from origin along d
func clearLine(origin core.Point, d core.Direction, from, to int, inBounds func(core.Point) bool, blocked Blocked) bool {
	for i := from; i <= to; i++ {
		p := core.Point{X: origin.X + d.X*i, Y: origin.Y + d.Y*i}
		if !inBounds(p) || blocked(p) {
			return false
		}
	}
	return true
}
