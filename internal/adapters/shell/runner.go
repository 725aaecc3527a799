// Package shell provides the external tool runner adapter.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes a tool and returns its standard output. Standard error is
// buffered and attached to the returned error on failure; on success it is
// forwarded to the logger at debug level, since tools like ldd print
// diagnostics there even when they succeed.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // tool names come from a fixed set

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "stdout pipe")
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		if strings.Contains(err.Error(), "executable file not found") {
			return nil, zerr.With(domain.ErrToolUnavailable, "tool", name)
		}
		return nil, zerr.With(zerr.Wrap(err, "start command"), "tool", name)
	}

	var stdout, stderr bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		_, err := stdout.ReadFrom(stdoutPipe)
		return err
	})
	g.Go(func() error {
		_, err := stderr.ReadFrom(stderrPipe)
		return err
	})
	drainErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		toolErr := zerr.With(zerr.Wrap(err, domain.ErrToolFailed.Error()), "tool", name)
		toolErr = zerr.With(toolErr, "exit_code", exitCode)
		toolErr = zerr.With(toolErr, "stderr", strings.TrimSpace(stderr.String()))
		return stdout.Bytes(), toolErr
	}
	if drainErr != nil {
		return stdout.Bytes(), zerr.Wrap(drainErr, "drain output")
	}

	for _, line := range strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n") {
		if line != "" {
			r.logger.Debug(name + ": " + line)
		}
	}

	return stdout.Bytes(), nil
}

// LookPath resolves a tool name against PATH.
func (r *Runner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", zerr.With(domain.ErrToolUnavailable, "tool", name)
	}
	return path, nil
}
