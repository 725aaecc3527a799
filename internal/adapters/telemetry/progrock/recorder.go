// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/qtdeploy/internal/core/ports"
)

// Tracer implements ports.Tracer on top of a progrock recording session.
// Each deployment stage becomes a vertex on the tape.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Tracer recording to a default tape.
func New() *Tracer {
	tape := progrock.NewTape()
	return NewTracer(tape)
}

// NewTracer creates a new Tracer with the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	rec := progrock.NewRecorder(w)
	return &Tracer{
		w:   w,
		rec: rec,
	}
}

// Start opens a vertex for the named stage.
func (t *Tracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// EmitPlan does nothing; the tape shows vertexes as they start.
func (t *Tracer) EmitPlan(_ context.Context, _ []string) {}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

var _ ports.Tracer = (*Tracer)(nil)
