package status

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Snapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get(KeyTicks).Store(42)
	reg.Floats.Get(KeyElapsed).Set(1.5)
	reg.Bools.Get(KeyGameOver).Store(true)
	reg.Strings.Get(KeyMatchID).Store("abc")

	assert.Equal(t, 4, reg.TotalCount())
	assert.Same(t, reg.Ints.Get(KeyTicks), reg.Ints.Get(KeyTicks))

	snap := reg.Snapshot()
	assert.Equal(t, 42.0, snap[KeyTicks])
	assert.Equal(t, 1.5, snap[KeyElapsed])
	assert.Equal(t, 1.0, snap[KeyGameOver])
	assert.NotContains(t, snap, KeyMatchID)
}

func TestMetricMap_RangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("b").Set(2)
	m.Get("a").Set(1)
	m.Get("c").Add(3)

	var keys []string
	m.Range(func(k string, v *AtomicFloat) { keys = append(keys, k) })
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("z"))
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	long := "0123456789012345678901234567890123456789-overflow"
	s.Store(long)
	assert.Equal(t, long[:MaxStringLen], s.Load())
}

func TestCollector_Gather(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get(KeyAlive).Store(5)
	reg.Floats.Get(KeyTickSeconds).Set(0.02)
	reg.Bools.Get(KeyPaused).Store(false)
	reg.Strings.Get(KeyMatchID).Store("m-1")

	c := NewCollector(reg, "snakearena")
	promReg := prometheus.NewRegistry()
	require.NoError(t, promReg.Register(c))

	families, err := promReg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)

	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			values[mf.GetName()] = m.GetGauge().GetValue()
		}
	}
	assert.Equal(t, 5.0, values["snakearena_arena_alive"])
	assert.Equal(t, 0.02, values["snakearena_engine_tick_seconds"])
	assert.Equal(t, 0.0, values["snakearena_engine_paused"])
	assert.Equal(t, 1.0, values["snakearena_match_id_info"])
}
