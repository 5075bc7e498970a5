package circular

import (
	"github.com/SergeyMakeev/CircularBuffer/metric"
)

// Option configures buffer behavior using the functional options pattern.
type Option[T any] func(*bufferOptions[T])

// bufferOptions holds internal configuration for buffer instances.
// Stats are always collected - they are not an option.
type bufferOptions[T any] struct {
	policy           Policy
	inlineThreshold  int
	evictionCallback EvictionCallback[T]

	// metricsReg is optional - if provided, buffer stats are also exposed
	// as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the buffer label for Prometheus metrics
	metricsPrefix string
}

// WithPolicy sets the overflow behavior for the buffer.
// Defaults to Overwrite if not specified.
func WithPolicy[T any](policy Policy) Option[T] {
	return func(opts *bufferOptions[T]) {
		opts.policy = policy
	}
}

// WithInlineThreshold sets the capacity cutoff for embedded storage. A
// buffer whose capacity is at or below the threshold keeps its slots inside
// its own allocation; above it, slots live in a separately allocated block.
// Zero forces heap storage. Values above DefaultInlineThreshold are capped,
// since the embedded block size is fixed at compile time.
func WithInlineThreshold[T any](threshold int) Option[T] {
	return func(opts *bufferOptions[T]) {
		opts.inlineThreshold = threshold
	}
}

// WithEvictionCallback sets a callback invoked with every element the buffer
// loses without handing it to the caller.
func WithEvictionCallback[T any](callback EvictionCallback[T]) Option[T] {
	return func(opts *bufferOptions[T]) {
		opts.evictionCallback = callback
	}
}

// WithMetrics enables Prometheus metrics export for buffer statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(opts *bufferOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// applyOptions applies functional options to create final buffer configuration.
func applyOptions[T any](options ...Option[T]) *bufferOptions[T] {
	opts := &bufferOptions[T]{
		policy:          Overwrite,
		inlineThreshold: DefaultInlineThreshold,
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
