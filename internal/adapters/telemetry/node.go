package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	progrockad "go.trai.ch/qtdeploy/internal/adapters/telemetry/progrock"
	"go.trai.ch/qtdeploy/internal/core/ports"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// ProgressModeEnv selects the tracer implementation. The worker subcommand
// sets it to ProgressModeWorker so a supervising process can parse
// progress lines.
const (
	ProgressModeEnv    = "QTDEPLOY_PROGRESS"
	ProgressModeWorker = "worker"
	ProgressModeNone   = "none"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			switch os.Getenv(ProgressModeEnv) {
			case ProgressModeWorker:
				return NewWorkerTracer(os.Stdout), nil
			case ProgressModeNone:
				return NewNoOpTracer(), nil
			default:
				return progrockad.New(), nil
			}
		},
	})
}
