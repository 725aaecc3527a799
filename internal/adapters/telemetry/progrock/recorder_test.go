package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/qtdeploy/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	tracer := progrock.New()
	assert.NotNil(t, tracer)
}

func TestTracer_Integration(t *testing.T) {
	tracer := progrock.New()
	ctx := context.Background()

	tracer.EmitPlan(ctx, []string{"resolve", "libraries"})

	_, span := tracer.Start(ctx, "resolve")

	if _, err := span.Write([]byte("libQt6Core.so.6 => /opt/qt6/lib/libQt6Core.so.6\n")); err != nil {
		t.Errorf("failed to write to span: %v", err)
	}

	span.SetAttribute("bundled", 12)
	span.Progress(1, 2)
	span.End()

	_, failed := tracer.Start(ctx, "libraries")
	failed.RecordError(errors.New("library not found"))
	failed.End()

	if err := tracer.Close(); err != nil {
		t.Errorf("failed to close tracer: %v", err)
	}
}
