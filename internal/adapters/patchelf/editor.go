// Package patchelf rewrites ELF run paths through the patchelf tool.
package patchelf

import (
	"context"
	"strings"

	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Editor implements ports.RunPathEditor using patchelf.
type Editor struct {
	runner ports.CommandRunner
}

// NewEditor creates a new Editor.
func NewEditor(runner ports.CommandRunner) *Editor {
	return &Editor{runner: runner}
}

// Available reports whether patchelf can be found on PATH.
func (e *Editor) Available() bool {
	_, err := e.runner.LookPath("patchelf")
	return err == nil
}

// ReadRunPath returns the current RPATH/RUNPATH of the file.
func (e *Editor) ReadRunPath(ctx context.Context, path string) (string, error) {
	out, err := e.runner.Run(ctx, "patchelf", "--print-rpath", path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "print rpath"), "file", path)
	}
	return strings.TrimSpace(string(out)), nil
}

// ClearRunPath removes any existing run path from the file.
func (e *Editor) ClearRunPath(ctx context.Context, path string) error {
	if _, err := e.runner.Run(ctx, "patchelf", "--remove-rpath", path); err != nil {
		return zerr.With(zerr.Wrap(err, "remove rpath"), "file", path)
	}
	return nil
}

// SetRunPath replaces the run path of the file.
func (e *Editor) SetRunPath(ctx context.Context, path, runPath string) error {
	if _, err := e.runner.Run(ctx, "patchelf", "--set-rpath", runPath, path); err != nil {
		return zerr.With(zerr.Wrap(err, "set rpath"), "file", path)
	}
	return nil
}
