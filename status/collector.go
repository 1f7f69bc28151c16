package status

import (
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a Registry to Prometheus as gauges
// Metric names are namespace_ + key with dots replaced by underscores;
// string metrics become an info gauge labelled with their value
type Collector struct {
	reg       *Registry
	namespace string
}

// NewCollector wraps reg for registration with a prometheus.Registerer
func NewCollector(reg *Registry, namespace string) *Collector {
	return &Collector{reg: reg, namespace: namespace}
}

// Describe sends nothing, keeping the collector unchecked since keys are registered lazily
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Ints.Range(func(k string, v *atomic.Int64) {
		ch <- c.gauge(k, float64(v.Load()))
	})
	c.reg.Floats.Range(func(k string, v *AtomicFloat) {
		ch <- c.gauge(k, v.Get())
	})
	c.reg.Bools.Range(func(k string, v *atomic.Bool) {
		val := 0.0
		if v.Load() {
			val = 1
		}
		ch <- c.gauge(k, val)
	})
	c.reg.Strings.Range(func(k string, v *AtomicString) {
		desc := prometheus.NewDesc(c.metricName(k)+"_info", "snakearena "+k, []string{"value"}, nil)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, 1, v.Load())
	})
}

func (c *Collector) gauge(key string, val float64) prometheus.Metric {
	desc := prometheus.NewDesc(c.metricName(key), "snakearena "+key, nil, nil)
	return prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, val)
}

func (c *Collector) metricName(key string) string {
	name := strings.NewReplacer(".", "_", "-", "_").Replace(key)
	if c.namespace == "" {
		return name
	}
	return c.namespace + "_" + name
}
