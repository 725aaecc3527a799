// Package qmlscan finds QML imports through the framework's qmlimportscanner.
package qmlscan

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

// scanTimeout bounds one scanner invocation; large trees on slow disks can
// otherwise stall the whole deployment.
const scanTimeout = 60 * time.Second

// Scanner implements ports.QMLScanner.
type Scanner struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(runner ports.CommandRunner, logger ports.Logger) *Scanner {
	return &Scanner{runner: runner, logger: logger}
}

type scannerImport struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// Scan runs qmlimportscanner over the source trees and returns the imported
// modules. A missing scanner or unparsable output is an error; the caller
// decides whether QML deployment is optional for the run.
func (s *Scanner) Scan(ctx context.Context, install domain.QtInstall, sourceDirs []string) ([]domain.QMLModule, error) {
	if len(sourceDirs) == 0 {
		return nil, nil
	}

	scannerPath, err := s.findScanner(install)
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, 2*len(sourceDirs)+2)
	for _, dir := range sourceDirs {
		args = append(args, "-rootPath", dir)
	}
	if install.QML != "" {
		args = append(args, "-importPath", install.QML)
	}

	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	out, err := s.runner.Run(ctx, scannerPath, args...)
	if err != nil {
		return nil, zerr.Wrap(err, "qmlimportscanner")
	}

	var imports []scannerImport
	if err := json.Unmarshal(out, &imports); err != nil {
		return nil, zerr.Wrap(err, "parse qmlimportscanner output")
	}

	modules := make([]domain.QMLModule, 0, len(imports))
	for _, imp := range imports {
		modules = append(modules, domain.QMLModule{
			Name:         imp.Name,
			Path:         imp.Path,
			RelativePath: relativeModulePath(imp.Name, imp.Path),
			Type:         imp.Type,
		})
	}
	s.logger.Info("qml imports found: " + strconv.Itoa(len(modules)))
	return modules, nil
}

// findScanner looks for qmlimportscanner in the install's bin and libexec
// directories before falling back to PATH.
func (s *Scanner) findScanner(install domain.QtInstall) (string, error) {
	for _, dir := range []string{install.Bins, install.LibExecs} {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, "qmlimportscanner")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	if path, err := s.runner.LookPath("qmlimportscanner"); err == nil {
		return path, nil
	}
	return "", zerr.With(domain.ErrToolUnavailable, "tool", "qmlimportscanner")
}

// relativeModulePath maps a dotted module name onto its directory under the
// QML root, keeping a trailing version suffix like ".2" when the install path
// carries one.
func relativeModulePath(name, path string) string {
	if name == "" {
		return ""
	}
	rel := strings.ReplaceAll(name, ".", "/")
	if len(path) >= 2 {
		suffix := path[len(path)-2:]
		if strings.HasPrefix(suffix, ".") {
			rel += suffix
		}
	}
	return rel
}
