package metric

// Option customises a Collector.
type Option func(c *Collector)

// WithNamespace sets the metric namespace, "idalloc" by default.
func WithNamespace(namespace string) Option {
	return func(c *Collector) {
		c.namespace = namespace
	}
}

// WithPool sets the pool label value identifying the dispatcher.
func WithPool(pool string) Option {
	return func(c *Collector) {
		c.pool = pool
	}
}
