// Package config provides the configuration loader for qtdeploy.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file looked up in the working directory.
const Filename = "qtdeploy.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file and fills any request fields the command
// line left unset. Without an explicit path on the request, qtdeploy.yaml in
// the working directory is used and may be absent.
func (l *Loader) Load(cwd string, req *domain.DeployRequest) error {
	path := req.ConfigFile
	explicit := path != ""
	if !explicit {
		path = filepath.Join(cwd, Filename)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if err != nil {
		// The default file is optional, an explicitly named one is not.
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Deployfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	l.logger.Debug("loaded configuration from " + path)
	apply(&file, req)
	return nil
}

// apply merges file values into the request. Flags win: a field already set
// on the request is left alone.
func apply(file *Deployfile, req *domain.DeployRequest) {
	if req.BinaryPath == "" {
		req.BinaryPath = file.Binary
	}
	if req.AppDir == "" {
		req.AppDir = file.Output
	}
	if len(req.QMLDirs) == 0 {
		req.QMLDirs = file.QMLDirs
	}
	if req.QtPath == "" {
		req.QtPath = file.QtPath
	}
	if req.DesktopFile == "" {
		req.DesktopFile = file.DesktopFile
	}
	if req.IconFile == "" {
		req.IconFile = file.Icon
	}
	if req.AppRunFile == "" {
		req.AppRunFile = file.AppRun
	}
	if req.Mode == domain.BundleDefault {
		req.Mode = parseMode(file.BundleMode)
	}
	// Stripping defaults to on; the file can disable it, but it cannot
	// override an explicit --no-strip.
	if file.Strip != nil && req.Strip {
		req.Strip = *file.Strip
	}
	if !req.AlwaysOverwrite {
		req.AlwaysOverwrite = file.AlwaysOverwrite
	}
	if len(req.ExtraLibs) == 0 {
		req.ExtraLibs = file.ExtraLibs
	}
	if len(req.ExcludeLibs) == 0 {
		req.ExcludeLibs = file.ExcludeLibs
	}
	if len(req.KeepLibs) == 0 {
		req.KeepLibs = file.KeepLibs
	}
}

func parseMode(s string) domain.BundleMode {
	switch s {
	case "all-but-core":
		return domain.BundleAllButCore
	case "everything":
		return domain.BundleEverything
	default:
		return domain.BundleDefault
	}
}

var _ ports.ConfigLoader = (*Loader)(nil)
