package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/zerr"
)

// writeQtConf writes the qt.conf beside the main executable so the deployed
// framework resolves its own directories inside the bundle.
func (p *Pipeline) writeQtConf(r *run) error {
	path := r.layout.QtConf()
	if _, err := os.Stat(path); err == nil && !r.req.AlwaysOverwrite {
		p.deps.Logger.Debug("qt.conf exists, not overwriting")
		return nil
	}

	content := strings.Join([]string{
		"[Paths]",
		"Prefix = " + r.layout.QtConfPrefix(),
		"Plugins = plugins",
		"Imports = qml",
		"Qml2Imports = qml",
		"",
	}, "\n")

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write qt.conf")
	}
	return nil
}

// writeAppRun installs the launcher at the bundle root. A user-supplied
// script wins; otherwise one is generated that isolates the bundled
// libraries from the host.
func (p *Pipeline) writeAppRun(r *run, mainDst string) error {
	appRun := r.layout.AppRun()

	if r.req.AppRunFile != "" {
		entry, err := p.deps.Deployer.CopyFile(r.req.AppRunFile, appRun, r.req.AlwaysOverwrite)
		if err != nil {
			return zerr.Wrap(err, "failed to deploy launcher")
		}
		if err := os.Chmod(appRun, 0o755); err != nil {
			return zerr.Wrap(err, "failed to mark launcher executable")
		}
		r.manifest.Record(r.rel(appRun), entry)
		return nil
	}

	if _, err := os.Stat(appRun); err == nil && !r.req.AlwaysOverwrite {
		p.deps.Logger.Debug("AppRun exists, not overwriting")
		return nil
	}

	binRel, err := filepath.Rel(r.layout.Root, mainDst)
	if err != nil {
		return zerr.Wrap(err, "failed to locate main executable in appdir")
	}

	script := launcherScript(r.layout.Style, filepath.ToSlash(binRel))
	if err := os.WriteFile(appRun, []byte(script), 0o755); err != nil {
		return zerr.Wrap(err, "failed to write launcher")
	}
	return nil
}

func launcherScript(style domain.LayoutStyle, binRel string) string {
	libPath := `${HERE}/lib`
	pluginPath := `${HERE}/plugins`
	qmlPath := `${HERE}/qml`
	if style == domain.LayoutFHS {
		libPath = `${HERE}/usr/lib`
		pluginPath = `${HERE}/usr/plugins`
		qmlPath = `${HERE}/usr/qml`
	}

	return strings.Join([]string{
		"#!/bin/bash",
		`HERE="$(dirname "$(readlink -f "${0}")")"`,
		`export LD_LIBRARY_PATH="` + libPath + `${LD_LIBRARY_PATH:+:$LD_LIBRARY_PATH}"`,
		`export QT_PLUGIN_PATH="` + pluginPath + `${QT_PLUGIN_PATH:+:$QT_PLUGIN_PATH}"`,
		`export QML2_IMPORT_PATH="` + qmlPath + `${QML2_IMPORT_PATH:+:$QML2_IMPORT_PATH}"`,
		`exec "${HERE}/` + binRel + `" "$@"`,
		"",
	}, "\n")
}
