package navigation

import (
	"github.com/lixenwraith/snakearena/core"
)

// Blocked returns true if the cell cannot be entered during a search
type Blocked func(p core.Point) bool

type queueEntry struct {
	idx   int32
	depth int32
}

// Searcher runs bounded breadth-first searches over a square grid
// Visited state is generation-stamped so buffers are reused across searches without clearing
// Not safe for concurrent use
type Searcher struct {
	size   int
	gen    uint32
	stamp  []uint32
	parent []int32
	queue  []queueEntry
}

// NewSearcher allocates search buffers for a size x size grid
func NewSearcher(size int) *Searcher {
	s := &Searcher{}
	s.Resize(size)
	return s
}

// Size returns the grid side length the buffers are sized for
func (s *Searcher) Size() int {
	return s.size
}

// Resize adjusts buffers to a new grid side length, previous search state is discarded
func (s *Searcher) Resize(size int) {
	if size < 0 {
		size = 0
	}
	n := size * size
	if cap(s.stamp) < n {
		s.stamp = make([]uint32, n)
		s.parent = make([]int32, n)
	} else {
		s.stamp = s.stamp[:n]
		s.parent = s.parent[:n]
		clear(s.stamp)
	}
	s.size = size
	s.gen = 0
	if cap(s.queue) < n {
		s.queue = make([]queueEntry, 0, n)
	}
}

// nextGen starts a fresh visited generation, clearing stamps on wraparound
func (s *Searcher) nextGen() {
	s.gen++
	if s.gen == 0 {
		clear(s.stamp)
		s.gen = 1
	}
	s.queue = s.queue[:0]
}

func (s *Searcher) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < s.size && p.Y >= 0 && p.Y < s.size
}

func (s *Searcher) index(p core.Point) int32 {
	return int32(p.Y*s.size + p.X)
}

func (s *Searcher) point(idx int32) core.Point {
	return core.Point{X: int(idx) % s.size, Y: int(idx) / s.size}
}

// ReachableCount counts cells reachable from start within maxDepth steps
// Start always counts, even when blocked, so an enclosed cell yields 1
// Expansion order is up, down, left, right
func (s *Searcher) ReachableCount(start core.Point, maxDepth int, blocked Blocked) int {
	if !s.inBounds(start) {
		return 1
	}
	s.nextGen()

	startIdx := s.index(start)
	s.stamp[startIdx] = s.gen
	s.queue = append(s.queue, queueEntry{idx: startIdx})

	count := 0
	for head := 0; head < len(s.queue); head++ {
		cur := s.queue[head]
		count++
		if int(cur.depth) >= maxDepth {
			continue
		}
		p := s.point(cur.idx)
		for _, d := range core.Directions {
			n := p.Add(d)
			if !s.inBounds(n) {
				continue
			}
			ni := s.index(n)
			if s.stamp[ni] == s.gen {
				continue
			}
			if blocked(n) {
				continue
			}
			s.stamp[ni] = s.gen
			s.queue = append(s.queue, queueEntry{idx: ni, depth: cur.depth + 1})
		}
	}
	return count
}

// FindPath returns the shortest path from start to target excluding start
// maxExpansions caps dequeued nodes; exceeding it or exhausting the frontier
// returns ok=false, which callers treat as a fallback trigger
func (s *Searcher) FindPath(start, target core.Point, maxExpansions int, blocked Blocked) ([]core.Point, bool) {
	if start == target {
		return nil, true
	}
	if !s.inBounds(start) || !s.inBounds(target) {
		return nil, false
	}
	s.nextGen()

	startIdx := s.index(start)
	targetIdx := s.index(target)
	s.stamp[startIdx] = s.gen
	s.parent[startIdx] = -1
	s.queue = append(s.queue, queueEntry{idx: startIdx})

	expansions := 0
	for head := 0; head < len(s.queue) && expansions < maxExpansions; head++ {
		expansions++
		cur := s.queue[head]
		if cur.idx == targetIdx {
			return s.unwind(targetIdx), true
		}
		p := s.point(cur.idx)
		for _, d := range core.Directions {
			n := p.Add(d)
			if !s.inBounds(n) {
				continue
			}
			ni := s.index(n)
			if s.stamp[ni] == s.gen {
				continue
			}
			if blocked(n) {
				continue
			}
			s.stamp[ni] = s.gen
			s.parent[ni] = cur.idx
			s.queue = append(s.queue, queueEntry{idx: ni, depth: cur.depth + 1})
		}
	}
	return nil, false
}

// unwind rebuilds the path ending at idx, start excluded
func (s *Searcher) unwind(idx int32) []core.Point {
	var rev []core.Point
	for i := idx; s.parent[i] != -1; i = s.parent[i] {
		rev = append(rev, s.point(i))
	}
	path := make([]core.Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
