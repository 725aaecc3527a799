// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/qtdeploy/internal/adapters/config"
	_ "go.trai.ch/qtdeploy/internal/adapters/elfpatch"
	_ "go.trai.ch/qtdeploy/internal/adapters/fs"
	_ "go.trai.ch/qtdeploy/internal/adapters/ldd"
	_ "go.trai.ch/qtdeploy/internal/adapters/logger"
	_ "go.trai.ch/qtdeploy/internal/adapters/manifest"
	_ "go.trai.ch/qtdeploy/internal/adapters/patchelf"
	_ "go.trai.ch/qtdeploy/internal/adapters/qmake"
	_ "go.trai.ch/qtdeploy/internal/adapters/qmlscan"
	_ "go.trai.ch/qtdeploy/internal/adapters/shell"
	_ "go.trai.ch/qtdeploy/internal/adapters/strip"
	_ "go.trai.ch/qtdeploy/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/qtdeploy/internal/app"
	_ "go.trai.ch/qtdeploy/internal/engine/pipeline"
	_ "go.trai.ch/qtdeploy/internal/engine/resolver"
)
