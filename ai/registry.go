package ai

import (
	"github.com/lixenwraith/snakearena/agent"
	"github.com/lixenwraith/snakearena/core"
)

// Registry maps agent ids to decision contexts
// Owned by the orchestrator and passed into decision calls
type Registry struct {
	controllers map[int]*Controller
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{controllers: make(map[int]*Controller)}
}

// Add registers c under its agent id, replacing any previous controller
func (r *Registry) Add(c *Controller) {
	r.controllers[c.id] = c
}

// Get returns the controller for id
func (r *Registry) Get(id int) (*Controller, bool) {
	c, ok := r.controllers[id]
	return c, ok
}

// Remove drops the controller for id
func (r *Registry) Remove(id int) {
	delete(r.controllers, id)
}

// Clear drops every controller
func (r *Registry) Clear() {
	clear(r.controllers)
}

// DecideAll computes a direction for every living, engine-driven agent in slice
// order; every decision reads the same World
func (r *Registry) DecideAll(agents []*agent.Agent, w World) map[int]core.Direction {
	out := make(map[int]core.Direction, len(r.controllers))
	for _, a := range agents {
		if !a.Alive || !a.Controlled() {
			continue
		}
		c, ok := r.controllers[a.ID]
		if !ok {
			continue
		}
		out[a.ID] = c.Decide(a, w)
	}
	return out
}
