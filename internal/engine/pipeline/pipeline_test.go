package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/qtdeploy/internal/adapters/fs"
	"go.trai.ch/qtdeploy/internal/adapters/logger"
	"go.trai.ch/qtdeploy/internal/adapters/manifest"
	"go.trai.ch/qtdeploy/internal/adapters/telemetry"
	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports/mocks"
	"go.trai.ch/qtdeploy/internal/engine/pipeline"
	"go.trai.ch/qtdeploy/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

// writeELF creates a file that passes the ELF magic check.
func writeELF(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	content := append([]byte{0x7f, 'E', 'L', 'F'}, []byte("fake image")...)
	require.NoError(t, os.WriteFile(path, content, 0o755))
}

type env struct {
	ctrl     *gomock.Controller
	lister   *mocks.MockDependencyLister
	searcher *mocks.MockLibrarySearcher
	locator  *mocks.MockQtLocator
	editor   *mocks.MockRunPathEditor
	stripper *mocks.MockStripper
	patcher  *mocks.MockStackPatcher
	scanner  *mocks.MockQMLScanner
	pipe     *pipeline.Pipeline
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctrl := gomock.NewController(t)

	e := &env{
		ctrl:     ctrl,
		lister:   mocks.NewMockDependencyLister(ctrl),
		searcher: mocks.NewMockLibrarySearcher(ctrl),
		locator:  mocks.NewMockQtLocator(ctrl),
		editor:   mocks.NewMockRunPathEditor(ctrl),
		stripper: mocks.NewMockStripper(ctrl),
		patcher:  mocks.NewMockStackPatcher(ctrl),
		scanner:  mocks.NewMockQMLScanner(ctrl),
	}

	log := logger.New()
	hasher := fs.NewHasher()
	e.pipe = pipeline.New(pipeline.Deps{
		Logger:   log,
		Tracer:   telemetry.NewNoOpTracer(),
		Locator:  e.locator,
		Resolver: resolver.NewResolver(e.lister, e.searcher, log),
		Deployer: fs.NewCopier(hasher, log),
		Walker:   fs.NewWalker(),
		Editor:   e.editor,
		Stripper: e.stripper,
		Patcher:  e.patcher,
		Scanner:  e.scanner,
		Store:    manifest.NewStore(),
	})
	return e
}

// stubRelink makes run path editing succeed and report clean entries.
func (e *env) stubRelink() {
	e.editor.EXPECT().ClearRunPath(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	e.editor.EXPECT().SetRunPath(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	e.editor.EXPECT().ReadRunPath(gomock.Any(), gomock.Any()).Return("$ORIGIN:$ORIGIN/../lib", nil).AnyTimes()
	e.patcher.EXPECT().FixExecutableStack(gomock.Any()).Return(false, nil).AnyTimes()
}

func TestPipeline_DefaultModeBundlesFrameworkOnly(t *testing.T) {
	e := newEnv(t)
	e.stubRelink()

	root := t.TempDir()
	binPath := filepath.Join(root, "src", "app")
	qtCore := filepath.Join(root, "qt", "lib", "libQt5Core.so.5")
	writeELF(t, binPath)
	writeELF(t, qtCore)

	e.lister.EXPECT().ListDependencies(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, path string) ([]domain.Library, error) {
			if path == binPath {
				return []domain.Library{
					{Name: "libQt5Core.so.5", Path: qtCore},
					{Name: "libc.so.6", Path: "/usr/lib/libc.so.6"},
				}, nil
			}
			return nil, nil
		}).AnyTimes()
	e.locator.EXPECT().Locate(gomock.Any(), "", domain.Qt5).
		Return(domain.QtInstall{}, errors.New("no qmake on this host"))

	appDir := filepath.Join(root, "AppDir")
	report, err := e.pipe.Run(context.Background(), domain.DeployRequest{
		BinaryPath: binPath,
		AppDir:     appDir,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LayoutFlat, report.Style)
	assert.Equal(t, 1, report.Summary.Bundled)
	assert.Equal(t, 1, report.Summary.Excluded)
	assert.Equal(t, domain.Qt5, report.Summary.Version)

	// Flat layout keeps the main executable and qt.conf at the AppDir root.
	assert.FileExists(t, filepath.Join(appDir, "app"))
	assert.FileExists(t, filepath.Join(appDir, "lib", "libQt5Core.so.5"))
	assert.NoFileExists(t, filepath.Join(appDir, "lib", "libc.so.6"))
	assert.FileExists(t, filepath.Join(appDir, manifest.Filename))

	assert.True(t, report.Manifest.Has("app"))
	assert.True(t, report.Manifest.Has("lib/libQt5Core.so.5"))
	assert.Equal(t, domain.Qt5, report.Manifest.QtVersion)

	qtConf, err := os.ReadFile(filepath.Join(appDir, "qt.conf"))
	require.NoError(t, err)
	assert.Contains(t, string(qtConf), "Prefix = ./")

	appRun, err := os.Stat(filepath.Join(appDir, "AppRun"))
	require.NoError(t, err)
	assert.NotZero(t, appRun.Mode().Perm()&0o111)
}

func TestPipeline_FHSLayoutForPrefixedBinary(t *testing.T) {
	e := newEnv(t)
	e.stubRelink()

	root := t.TempDir()
	binPath := filepath.Join(root, "prefix", "bin", "app")
	writeELF(t, binPath)

	// Pure system binary: no framework libraries, so no install lookup.
	e.lister.EXPECT().ListDependencies(gomock.Any(), binPath).Return([]domain.Library{
		{Name: "libc.so.6", Path: "/usr/lib/libc.so.6"},
	}, nil)

	appDir := filepath.Join(root, "AppDir")
	report, err := e.pipe.Run(context.Background(), domain.DeployRequest{
		BinaryPath: binPath,
		AppDir:     appDir,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LayoutFHS, report.Style)
	assert.Equal(t, 0, report.Summary.Bundled)
	assert.FileExists(t, filepath.Join(appDir, "usr", "bin", "app"))

	qtConf, err := os.ReadFile(filepath.Join(appDir, "usr", "bin", "qt.conf"))
	require.NoError(t, err)
	assert.Contains(t, string(qtConf), "Prefix = ../")
}

func TestPipeline_MissingBinary(t *testing.T) {
	e := newEnv(t)

	_, err := e.pipe.Run(context.Background(), domain.DeployRequest{
		BinaryPath: filepath.Join(t.TempDir(), "nope"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStageFailed)
	assert.ErrorIs(t, err, domain.ErrBinaryNotFound)
}

func TestPipeline_MissingCompanionFile(t *testing.T) {
	e := newEnv(t)

	root := t.TempDir()
	binPath := filepath.Join(root, "app")
	writeELF(t, binPath)

	_, err := e.pipe.Run(context.Background(), domain.DeployRequest{
		BinaryPath:  binPath,
		AppDir:      filepath.Join(root, "AppDir"),
		DesktopFile: filepath.Join(root, "nope.desktop"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingCompanion)

	// Validation failed before anything was written.
	assert.NoDirExists(t, filepath.Join(root, "AppDir"))
}

func TestPipeline_NotELF(t *testing.T) {
	e := newEnv(t)

	root := t.TempDir()
	binPath := filepath.Join(root, "script.sh")
	require.NoError(t, os.WriteFile(binPath, []byte("#!/bin/sh\n"), 0o755))

	_, err := e.pipe.Run(context.Background(), domain.DeployRequest{BinaryPath: binPath})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotELF)
}

func TestPipeline_DeploysPlatformPlugin(t *testing.T) {
	e := newEnv(t)
	e.stubRelink()

	root := t.TempDir()
	binPath := filepath.Join(root, "src", "app")
	qtLibs := filepath.Join(root, "qt", "lib")
	qtGui := filepath.Join(qtLibs, "libQt5Gui.so.5")
	xcbQpa := filepath.Join(qtLibs, "libQt5XcbQpa.so.5")
	qxcb := filepath.Join(root, "qt", "plugins", "platforms", "libqxcb.so")
	writeELF(t, binPath)
	writeELF(t, qtGui)
	writeELF(t, xcbQpa)
	writeELF(t, qxcb)

	e.lister.EXPECT().ListDependencies(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, path string) ([]domain.Library, error) {
			if path == binPath {
				return []domain.Library{{Name: "libQt5Gui.so.5", Path: qtGui}}, nil
			}
			return nil, nil
		}).AnyTimes()
	e.locator.EXPECT().Locate(gomock.Any(), "", domain.Qt5).Return(domain.QtInstall{
		Prefix:  filepath.Join(root, "qt"),
		Libs:    qtLibs,
		Plugins: filepath.Join(root, "qt", "plugins"),
		Version: domain.Qt5,
	}, nil)

	appDir := filepath.Join(root, "AppDir")
	report, err := e.pipe.Run(context.Background(), domain.DeployRequest{
		BinaryPath: binPath,
		AppDir:     appDir,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(appDir, "plugins", "platforms", "libqxcb.so"))
	// The runtime-loaded platform library rides along even though the
	// dynamic linker never reports it.
	assert.FileExists(t, filepath.Join(appDir, "lib", "libQt5XcbQpa.so.5"))
	assert.True(t, report.Manifest.Has("plugins/platforms/libqxcb.so"))
}

func TestPipeline_AuditFlagsAbsoluteRunPaths(t *testing.T) {
	e := newEnv(t)

	root := t.TempDir()
	binPath := filepath.Join(root, "src", "app")
	writeELF(t, binPath)

	e.lister.EXPECT().ListDependencies(gomock.Any(), binPath).Return(nil, nil)
	e.patcher.EXPECT().FixExecutableStack(gomock.Any()).Return(false, nil).AnyTimes()
	e.editor.EXPECT().ClearRunPath(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	e.editor.EXPECT().SetRunPath(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	// The repair attempt does not help; the file keeps its absolute entry.
	e.editor.EXPECT().ReadRunPath(gomock.Any(), gomock.Any()).Return("/usr/lib/qt5", nil).AnyTimes()

	_, err := e.pipe.Run(context.Background(), domain.DeployRequest{
		BinaryPath: binPath,
		AppDir:     filepath.Join(root, "AppDir"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAbsoluteRunPath)
	assert.Contains(t, err.Error(), "app")
}

func TestPipeline_MissingRelinkerDegrades(t *testing.T) {
	e := newEnv(t)

	root := t.TempDir()
	binPath := filepath.Join(root, "src", "app")
	writeELF(t, binPath)

	e.lister.EXPECT().ListDependencies(gomock.Any(), binPath).Return(nil, nil)
	e.patcher.EXPECT().FixExecutableStack(gomock.Any()).Return(false, nil).AnyTimes()
	// No run path editor on this host: every call reports the missing tool.
	e.editor.EXPECT().ClearRunPath(gomock.Any(), gomock.Any()).Return(domain.ErrToolUnavailable).AnyTimes()
	e.editor.EXPECT().SetRunPath(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrToolUnavailable).AnyTimes()
	e.editor.EXPECT().ReadRunPath(gomock.Any(), gomock.Any()).Return("", domain.ErrToolUnavailable).AnyTimes()

	appDir := filepath.Join(root, "AppDir")
	report, err := e.pipe.Run(context.Background(), domain.DeployRequest{
		BinaryPath: binPath,
		AppDir:     appDir,
	})
	require.NoError(t, err, "a missing relinker degrades the step, it does not abort the deployment")
	assert.NotEmpty(t, report.Warnings)
	assert.FileExists(t, filepath.Join(appDir, "app"))
}

func TestPipeline_StripsDeployedLibraries(t *testing.T) {
	e := newEnv(t)
	e.stubRelink()

	root := t.TempDir()
	binPath := filepath.Join(root, "src", "app")
	qtCore := filepath.Join(root, "qt", "lib", "libQt6Core.so.6")
	writeELF(t, binPath)
	writeELF(t, qtCore)

	e.lister.EXPECT().ListDependencies(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, path string) ([]domain.Library, error) {
			if path == binPath {
				return []domain.Library{{Name: "libQt6Core.so.6", Path: qtCore}}, nil
			}
			return nil, nil
		}).AnyTimes()
	e.locator.EXPECT().Locate(gomock.Any(), "", domain.Qt6).
		Return(domain.QtInstall{}, errors.New("no qmake"))

	appDir := filepath.Join(root, "AppDir")
	e.stripper.EXPECT().Strip(gomock.Any(), filepath.Join(appDir, "app")).Return(nil)
	e.stripper.EXPECT().Strip(gomock.Any(), filepath.Join(appDir, "lib", "libQt6Core.so.6")).Return(nil)

	_, err := e.pipe.Run(context.Background(), domain.DeployRequest{
		BinaryPath: binPath,
		AppDir:     appDir,
		Strip:      true,
	})
	require.NoError(t, err)
}

func TestPipeline_RemovesLeftoverExcludedLibraries(t *testing.T) {
	e := newEnv(t)
	e.stubRelink()

	root := t.TempDir()
	binPath := filepath.Join(root, "src", "app")
	writeELF(t, binPath)

	// A previous everything-mode run left libc in the bundle.
	appDir := filepath.Join(root, "AppDir")
	leftover := filepath.Join(appDir, "lib", "libc.so.6")
	writeELF(t, leftover)

	e.lister.EXPECT().ListDependencies(gomock.Any(), binPath).Return(nil, nil)

	_, err := e.pipe.Run(context.Background(), domain.DeployRequest{
		BinaryPath: binPath,
		AppDir:     appDir,
	})
	require.NoError(t, err)
	assert.NoFileExists(t, leftover)
}
