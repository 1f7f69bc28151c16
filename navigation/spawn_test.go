package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/snakearena/core"
)

func TestSafeSpawns_AllInteriorOccupied(t *testing.T) {
	size, margin := 10, 3
	blocked := func(p core.Point) bool {
		return p.X >= margin && p.X < size-margin && p.Y >= margin && p.Y < size-margin
	}

	assert.Empty(t, SafeSpawns(size, margin, 3, 3, blocked))
}

func TestSafeSpawns_EmptyGrid(t *testing.T) {
	spawns := SafeSpawns(10, 3, 3, 3, none)
	assert.NotEmpty(t, spawns)

	for _, sp := range spawns {
		assert.GreaterOrEqual(t, sp.Head.X, 3)
		assert.Less(t, sp.Head.X, 7)
		for i := 1; i <= 3; i++ {
			ahead := core.Point{X: sp.Head.X + sp.Direction.X*i, Y: sp.Head.Y + sp.Direction.Y*i}
			assert.True(t, ahead.X >= 0 && ahead.X < 10 && ahead.Y >= 0 && ahead.Y < 10)
		}
	}
}

func TestSafeSpawns_RespectsBlockedAhead(t *testing.T) {
	// Only a 1-wide horizontal corridor at y=5 is open
	blocked := func(p core.Point) bool { return p.Y != 5 }

	spawns := SafeSpawns(12, 3, 3, 3, blocked)
	assert.NotEmpty(t, spawns)
	for _, sp := range spawns {
		assert.Equal(t, 0, sp.Direction.Y, "vertical headings have no clear cells")
		assert.Equal(t, 5, sp.Head.Y)
	}
}

func TestSpawn_Body(t *testing.T) {
	sp := Spawn{Head: core.Point{X: 4, Y: 4}, Direction: core.Right}
	assert.Equal(t, []core.Point{{X: 4, Y: 4}, {X: 3, Y: 4}, {X: 2, Y: 4}}, sp.Body(3, 10))

	edge := Spawn{Head: core.Point{X: 0, Y: 0}, Direction: core.Right}
	assert.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}}, edge.Body(3, 10))
}
