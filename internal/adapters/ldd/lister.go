// Package ldd resolves shared-library dependencies through the system's
// dynamic linker front end.
package ldd

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolved dependency lines come in two shapes:
//
//	libfoo.so.1 => /usr/lib/libfoo.so.1 (0x00007f...)
//	/lib64/ld-linux-x86-64.so.2 (0x00007f...)
var (
	arrowPattern    = regexp.MustCompile(`^(.+) => (.+) \(`)
	absolutePattern = regexp.MustCompile(`^(\S+\.so\S*)\s+\(`)
)

// Lister implements ports.DependencyLister on top of the ldd tool.
type Lister struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewLister creates a new Lister.
func NewLister(runner ports.CommandRunner, logger ports.Logger) *Lister {
	return &Lister{runner: runner, logger: logger}
}

// ListDependencies runs ldd on the binary and parses its output. Dependencies
// the linker could not resolve come back with an empty Path; the caller
// decides whether that aborts the run.
func (l *Lister) ListDependencies(ctx context.Context, binaryPath string) ([]domain.Library, error) {
	out, err := l.runner.Run(ctx, "ldd", binaryPath)
	text := string(out)

	if strings.Contains(text, "statically linked") ||
		strings.Contains(text, "not a dynamic executable") {
		l.logger.Debug("no dynamic dependencies: " + binaryPath)
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "ldd"), "binary", binaryPath)
	}

	var libs []domain.Library
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := arrowPattern.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			path := strings.TrimSpace(m[2])
			libs = append(libs, domain.Library{Name: name, Path: path})
			continue
		}

		if strings.Contains(line, "not found") {
			name, _, _ := strings.Cut(line, " ")
			libs = append(libs, domain.Library{Name: strings.TrimSpace(name)})
			continue
		}

		if m := absolutePattern.FindStringSubmatch(line); m != nil {
			path := strings.TrimSpace(m[1])
			// linux-vdso is injected by the kernel and never exists on disk.
			if strings.HasPrefix(filepath.Base(path), "linux-vdso") {
				continue
			}
			if filepath.IsAbs(path) {
				libs = append(libs, domain.Library{Name: filepath.Base(path), Path: path})
			}
		}
	}

	return libs, nil
}
