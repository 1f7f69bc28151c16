package status

import (
	"sort"
	"sync"
)

// MetricMap holds named metric cells of one type
// Engines bind cell pointers once and update them without touching the map
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell bound to name, allocating it on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	cell, ok := m.cells[name]
	m.mu.RUnlock()
	if ok {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell, ok = m.cells[name]; !ok {
		cell = new(T)
		m.cells[name] = cell
	}
	return cell
}

// Has reports whether name was ever bound
func (m *MetricMap[T]) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cells[name] != nil
}

type metricEntry[T any] struct {
	name string
	cell *T
}

// Range visits every cell ordered by name
// fn runs outside the lock and may call Get
func (m *MetricMap[T]) Range(fn func(name string, cell *T)) {
	m.mu.RLock()
	entries := make([]metricEntry[T], 0, len(m.cells))
	for name, cell := range m.cells {
		entries = append(entries, metricEntry[T]{name, cell})
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	for _, e := range entries {
		fn(e.name, e.cell)
	}
}

// Count returns the number of bound cells
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
