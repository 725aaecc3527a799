// Package app implements the application layer for qtdeploy.
package app

import (
	"context"
	"os"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/qtdeploy/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// runner is the slice of the pipeline the app depends on.
type runner interface {
	Run(ctx context.Context, req domain.DeployRequest) (*pipeline.Report, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     runner
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, pipe *pipeline.Pipeline) *App {
	return &App{
		configLoader: loader,
		pipeline:     pipe,
	}
}

// Deploy merges configuration defaults into the request and runs the
// deployment pipeline.
func (a *App) Deploy(ctx context.Context, req domain.DeployRequest) (*pipeline.Report, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	if err := a.configLoader.Load(cwd, &req); err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if req.BinaryPath == "" {
		return nil, zerr.Wrap(domain.ErrBinaryNotFound, "no binary specified")
	}

	report, err := a.pipeline.Run(ctx, req)
	if err != nil {
		return nil, zerr.Wrap(err, "deployment failed")
	}
	return report, nil
}
