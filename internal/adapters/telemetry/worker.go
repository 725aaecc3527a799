package telemetry

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.trai.ch/qtdeploy/internal/core/ports"
)

// WorkerTracer implements ports.Tracer for machine consumption. It emits
// line-based progress records of the form
//
//	PROGRESS:<percent>:<message>
//
// on its writer so a supervising process can parse overall completion
// without understanding the individual stages.
type WorkerTracer struct {
	out io.Writer

	mu    sync.Mutex
	total int
	done  float64
}

// NewWorkerTracer creates a tracer writing progress records to out.
func NewWorkerTracer(out io.Writer) *WorkerTracer {
	return &WorkerTracer{out: out}
}

// EmitPlan fixes the number of units the percentage is computed against.
func (t *WorkerTracer) EmitPlan(_ context.Context, stageNames []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total = len(stageNames)
}

// Start announces a stage and returns a span that advances the percentage
// when it ends.
func (t *WorkerTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := ports.SpanConfig{Weight: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	t.mu.Lock()
	// A span heavier than one plan unit stretches the scale so the
	// percentage stays monotonic.
	if cfg.Weight > 1 {
		t.total += cfg.Weight - 1
	}
	t.emitLocked(0, name)
	t.mu.Unlock()

	return ctx, &workerSpan{tracer: t, name: name, weight: cfg.Weight}
}

// emitLocked writes one progress record. Caller holds t.mu.
func (t *WorkerTracer) emitLocked(extra float64, msg string) {
	total := t.total
	if total < 1 {
		total = 1
	}
	pct := int((t.done + extra) * 100 / float64(total))
	if pct > 100 {
		pct = 100
	}
	fmt.Fprintf(t.out, "PROGRESS:%d:%s\n", pct, msg)
}

type workerSpan struct {
	tracer *WorkerTracer
	name   string
	weight int
}

func (s *workerSpan) End() {
	s.tracer.mu.Lock()
	s.tracer.done += float64(s.weight)
	s.tracer.emitLocked(0, s.name)
	s.tracer.mu.Unlock()
}

func (s *workerSpan) RecordError(err error) {
	s.tracer.mu.Lock()
	fmt.Fprintf(s.tracer.out, "ERROR:%s\n", err.Error())
	s.tracer.mu.Unlock()
}

func (s *workerSpan) SetAttribute(_ string, _ any) {}

// Progress reports sub-stage completion as a fraction of the span's weight.
func (s *workerSpan) Progress(current, total int) {
	if total <= 0 {
		return
	}
	s.tracer.mu.Lock()
	s.tracer.emitLocked(float64(s.weight)*float64(current)/float64(total), s.name)
	s.tracer.mu.Unlock()
}

// Write discards stage output; the progress protocol is line-oriented and
// tool output would corrupt it.
func (s *workerSpan) Write(p []byte) (int, error) {
	return len(p), nil
}

var _ ports.Tracer = (*WorkerTracer)(nil)
