package x_aarray

import "github.com/rs/zerolog"

// Option configures an AssociativeArray.
type Option func(*options)

type options struct {
	log     zerolog.Logger
	metrics *Metrics
}

// WithLogger receives debug lines for every operation.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics mirrors the counters into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}
