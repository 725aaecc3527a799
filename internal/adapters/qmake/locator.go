// Package qmake discovers framework installs through qmake -query.
package qmake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator implements ports.QtLocator.
type Locator struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(runner ports.CommandRunner, logger ports.Logger) *Locator {
	return &Locator{runner: runner, logger: logger}
}

// Locate finds a usable qmake and queries it for install paths. An explicit
// hint pins the install root and fails hard when its qmake is missing;
// otherwise versioned candidates like qmake-qt5 are tried before plain qmake.
func (l *Locator) Locate(ctx context.Context, hint string, version domain.QtVersion) (domain.QtInstall, error) {
	qmakePath, err := l.findQmake(hint, version)
	if err != nil {
		return domain.QtInstall{}, err
	}
	l.logger.Debug("using qmake: " + qmakePath)

	out, err := l.runner.Run(ctx, qmakePath, "-query")
	if err != nil {
		return domain.QtInstall{}, zerr.With(zerr.Wrap(err, "qmake query"), "qmake", qmakePath)
	}

	values := parseQuery(string(out))
	install := domain.QtInstall{
		Prefix:       values["QT_INSTALL_PREFIX"],
		Bins:         values["QT_INSTALL_BINS"],
		Libs:         values["QT_INSTALL_LIBS"],
		LibExecs:     values["QT_INSTALL_LIBEXECS"],
		Plugins:      values["QT_INSTALL_PLUGINS"],
		QML:          values["QT_INSTALL_QML"],
		Translations: values["QT_INSTALL_TRANSLATIONS"],
		Data:         values["QT_INSTALL_DATA"],
		Version:      versionFromQuery(values["QT_VERSION"], version),
	}

	if install.Libs == "" {
		return domain.QtInstall{}, zerr.With(domain.ErrQtNotFound, "qmake", qmakePath)
	}
	return install, nil
}

func (l *Locator) findQmake(hint string, version domain.QtVersion) (string, error) {
	if hint != "" {
		explicit := filepath.Join(hint, "bin", "qmake")
		if _, err := os.Stat(explicit); err != nil {
			return "", zerr.With(domain.ErrQtNotFound, "qmake", explicit)
		}
		return explicit, nil
	}

	var candidates []string
	switch version {
	case domain.Qt6:
		candidates = []string{"qmake-qt6", "qmake6", "qmake"}
	case domain.Qt5:
		candidates = []string{"qmake-qt5", "qmake"}
	case domain.Qt4:
		candidates = []string{"qmake-qt4", "qmake"}
	default:
		candidates = []string{"qmake"}
	}

	for _, candidate := range candidates {
		if path, err := l.runner.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", zerr.With(domain.ErrQtNotFound, "candidates", strings.Join(candidates, ","))
}

// parseQuery splits "KEY:value" lines from qmake -query output.
func parseQuery(output string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if ok && key != "" {
			values[key] = strings.TrimSpace(value)
		}
	}
	return values
}

// versionFromQuery derives the major version from QT_VERSION, falling back to
// the requested version when the output is unusable.
func versionFromQuery(raw string, requested domain.QtVersion) domain.QtVersion {
	var major int
	if _, err := fmt.Sscanf(raw, "%d.", &major); err == nil {
		switch major {
		case 4:
			return domain.Qt4
		case 5:
			return domain.Qt5
		case 6:
			return domain.Qt6
		}
	}
	return requested
}
