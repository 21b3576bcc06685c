package domains

import (
	"catalog/internal/config"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultStart is the offset used when a list request omits Start.
	DefaultStart = 0
	// DefaultCount is the page size used when a list request omits Count.
	DefaultCount = 20
)

// Options configure the domain lister.
type Options struct {
	// DefaultStart replaces a missing ListRequest.Start.
	DefaultStart int
	// DefaultCount replaces a missing ListRequest.Count.
	DefaultCount int
	// MeterProvider receives the list metrics. The global provider is used when nil.
	MeterProvider metric.MeterProvider
	// TracerProvider receives the list spans. The global provider is used when nil.
	TracerProvider trace.TracerProvider
}

// DefaultOptions returns Options holding the package defaults.
func DefaultOptions() Options {
	return Options{
		DefaultStart: DefaultStart,
		DefaultCount: DefaultCount,
	}
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultStart: cfg.Domains.DefaultStart,
		DefaultCount: cfg.Domains.DefaultCount,
	}
}
