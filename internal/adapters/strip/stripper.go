// Package strip discards symbol tables from deployed binaries.
package strip

import (
	"context"
	"strings"

	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stripper implements ports.Stripper using the binutils strip tool.
type Stripper struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewStripper creates a new Stripper.
func NewStripper(runner ports.CommandRunner, logger ports.Logger) *Stripper {
	return &Stripper{runner: runner, logger: logger}
}

// Strip removes the symbol table of the file in place. Files strip refuses
// to touch (data files, already stripped binaries) are logged and skipped.
func (s *Stripper) Strip(ctx context.Context, path string) error {
	if _, err := s.runner.Run(ctx, "strip", path); err != nil {
		msg := err.Error()
		if strings.Contains(msg, "file format not recognized") ||
			strings.Contains(msg, "unable to recognise") {
			s.logger.Debug("strip skipped: " + path)
			return nil
		}
		return zerr.With(zerr.Wrap(err, "strip"), "file", path)
	}
	return nil
}
