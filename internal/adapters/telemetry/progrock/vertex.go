package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write forwards stage output to the vertex's stdout stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// SetAttribute records a key-value pair as a log line on the vertex.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// RecordError attaches an error to the span. The vertex is marked failed
// when the span ends.
func (s *Span) RecordError(err error) {
	s.err = err
	_, _ = fmt.Fprintf(s.vertex.Stderr(), "%v\n", err)
}

// Progress records sub-stage completion on the vertex's output stream.
func (s *Span) Progress(current, total int) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%d/%d\n", current, total)
}

// End marks the vertex as finished, failed if an error was recorded.
func (s *Span) End() {
	s.vertex.Done(s.err)
}
