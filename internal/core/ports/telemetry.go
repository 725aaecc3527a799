package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans around deployment stages.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals the ordered set of stages about to run.
	EmitPlan(ctx context.Context, stageNames []string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
	// Progress reports completion of the span's work as a fraction of total.
	Progress(current, total int)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Weight is the share of overall progress the span accounts for.
	Weight int
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithWeight sets the progress weight of a span.
func WithWeight(weight int) SpanOption {
	return func(c *SpanConfig) { c.Weight = weight }
}
