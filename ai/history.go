package ai

import (
	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/parameter"
)

// history is a fixed ring of recent head positions, oldest first
type history struct {
	buf   [parameter.AIHistorySize]core.Point
	start int
	n     int
}

func (h *history) push(p core.Point) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = p
		h.n++
		return
	}
	h.buf[h.start] = p
	h.start = (h.start + 1) % len(h.buf)
}

func (h *history) clear() {
	h.start, h.n = 0, 0
}

// at returns the i-th oldest entry
func (h *history) at(i int) core.Point {
	return h.buf[(h.start+i)%len(h.buf)]
}

// looping reports whether the last AILoopWindow heads cover at most
// AILoopMaxDistinct cells; an A-B-A-B oscillation falls under the same bound
func (h *history) looping() bool {
	if h.n < parameter.AILoopWindow {
		return false
	}
	var seen [parameter.AILoopWindow]core.Point
	distinct := 0
	for i := h.n - parameter.AILoopWindow; i < h.n; i++ {
		p := h.at(i)
		dup := false
		for j := 0; j < distinct; j++ {
			if seen[j] == p {
				dup = true
				break
			}
		}
		if !dup {
			seen[distinct] = p
			distinct++
		}
	}
	return distinct <= parameter.AILoopMaxDistinct
}

// tailChasing reports an agent hemmed in by its own body: few candidates and
// every recorded head within AITailChaseRadius of a body cell
func (h *history) tailChasing(body []core.Point, candidates int) bool {
	if candidates > parameter.AITailChaseMaxCandidates || h.n < parameter.AITailChaseWindow {
		return false
	}
	near := 0
	for i := 0; i < h.n; i++ {
		p := h.at(i)
		for _, c := range body {
			if core.Manhattan(p, c) <= parameter.AITailChaseRadius {
				near++
				break
			}
		}
	}
	return near >= parameter.AITailChaseWindow
}
