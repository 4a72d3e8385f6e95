package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/viant/idalloc"
	"github.com/viant/idalloc/internal/idgen"
)

const defaultNamespace = "idalloc"

const poolLabelName = "pool"

// Collector exposes dispatcher statistics as Prometheus metrics. It
// reads a fresh snapshot on every scrape through the supplied stats
// function; a caller that guards its dispatcher with a mutex takes
// that mutex inside the function.
type Collector struct {
	stats     func() idalloc.Stats
	namespace string
	pool      string

	watermark   *prometheus.Desc
	inUse       *prometheus.Desc
	free        *prometheus.Desc
	allocations *prometheus.Desc
	releases    *prometheus.Desc
	reuses      *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// New creates a collector reading snapshots from stats. Every metric
// carries a "pool" label so that dispatchers sharing a registry stay
// distinguishable; unless overridden with WithPool the label value is a
// generated identity such as "pool-3f29c1a4".
func New(stats func() idalloc.Stats, opts ...Option) *Collector {
	c := &Collector{stats: stats}
	for _, opt := range opts {
		opt(c)
	}
	if c.namespace == "" {
		c.namespace = defaultNamespace
	}
	if c.pool == "" {
		c.pool = idgen.New()
	}
	labels := []string{poolLabelName}
	c.watermark = prometheus.NewDesc(prometheus.BuildFQName(c.namespace, "", "watermark"),
		"Smallest id never issued so far.", labels, nil)
	c.inUse = prometheus.NewDesc(prometheus.BuildFQName(c.namespace, "", "ids_in_use"),
		"Number of ids currently allocated.", labels, nil)
	c.free = prometheus.NewDesc(prometheus.BuildFQName(c.namespace, "", "ids_free"),
		"Number of released ids waiting for reuse.", labels, nil)
	c.allocations = prometheus.NewDesc(prometheus.BuildFQName(c.namespace, "", "allocations_total"),
		"Total number of successful allocations.", labels, nil)
	c.releases = prometheus.NewDesc(prometheus.BuildFQName(c.namespace, "", "releases_total"),
		"Total number of successful releases.", labels, nil)
	c.reuses = prometheus.NewDesc(prometheus.BuildFQName(c.namespace, "", "reuses_total"),
		"Total number of allocations served from the free pool.", labels, nil)
	return c
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.watermark
	descs <- c.inUse
	descs <- c.free
	descs <- c.allocations
	descs <- c.releases
	descs <- c.reuses
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	stats := c.stats()
	metrics <- prometheus.MustNewConstMetric(c.watermark, prometheus.GaugeValue,
		float64(stats.Watermark), c.pool)
	metrics <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue,
		float64(stats.Allocated), c.pool)
	metrics <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue,
		float64(stats.Free), c.pool)
	metrics <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue,
		float64(stats.Allocations), c.pool)
	metrics <- prometheus.MustNewConstMetric(c.releases, prometheus.CounterValue,
		float64(stats.Releases), c.pool)
	metrics <- prometheus.MustNewConstMetric(c.reuses, prometheus.CounterValue,
		float64(stats.Reuses), c.pool)
}
