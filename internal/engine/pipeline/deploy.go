package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

func (p *Pipeline) stageResolve(ctx context.Context, r *run, span ports.Span) error {
	res, err := p.deps.Resolver.Resolve(ctx, r.req.BinaryPath, r.policy, r.extraDirs())
	if err != nil {
		return err
	}
	r.result = res

	span.SetAttribute("bundled", len(res.Bundled))
	span.SetAttribute("excluded", len(res.Excluded))
	return nil
}

func (p *Pipeline) stageDetect(ctx context.Context, r *run, span ports.Span) error {
	version := r.result.Version
	r.manifest.QtVersion = version
	span.SetAttribute("framework", version.String())

	if !version.Detected() && r.req.QtPath == "" {
		// Plain binary with no framework libraries: nothing to locate.
		p.deps.Logger.Info("no framework libraries in closure")
		r.components = domain.AnalyzeComponents(r.result.Bundled)
		return nil
	}

	install, err := p.deps.Locator.Locate(ctx, r.req.QtPath, version)
	if err != nil {
		if r.req.QtPath != "" {
			return zerr.With(err, "qt_path", r.req.QtPath)
		}
		p.deps.Logger.Warn("framework install not found, plugins will be skipped: " + err.Error())
		r.warn("framework install not found")
		r.components = domain.AnalyzeComponents(r.result.Bundled)
		return nil
	}
	r.install = install
	r.located = true
	p.deps.Logger.Info("framework install: " + install.Prefix)

	p.addPlatformLibraries(ctx, r, version)
	r.components = domain.AnalyzeComponents(r.result.Bundled)
	return nil
}

// addPlatformLibraries pulls in the platform libraries the dynamic linker
// never reports because plugins load them at runtime.
func (p *Pipeline) addPlatformLibraries(ctx context.Context, r *run, version domain.QtVersion) {
	major := int(version)
	if major != 5 && major != 6 {
		return
	}

	have := make(map[string]bool, len(r.result.Bundled))
	hasGui, hasQuick := false, false
	for _, lib := range r.result.Bundled {
		have[lib.Name] = true
		if strings.Contains(lib.Name, "Gui") {
			hasGui = true
		}
		if strings.Contains(lib.Name, "Quick") || strings.Contains(lib.Name, "Qml") {
			hasQuick = true
		}
	}

	var wanted []string
	if hasGui {
		wanted = append(wanted, "XcbQpa", "DBus")
	}
	if hasQuick {
		wanted = append(wanted, "QuickControls2", "QuickTemplates2")
	}

	for _, component := range wanted {
		name := fmt.Sprintf("libQt%d%s.so.%d", major, component, major)
		if have[name] {
			continue
		}
		path := filepath.Join(r.install.Libs, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		r.result.Bundled = append(r.result.Bundled, domain.Library{Name: name, Path: path})
		have[name] = true
		p.deps.Logger.Debug("added platform library " + name)

		// The library's own closure may bring in more to bundle.
		sub, err := p.deps.Resolver.Resolve(ctx, path, r.policy, r.extraDirs())
		if err != nil {
			p.deps.Logger.Warn("failed to resolve " + name + ": " + err.Error())
			continue
		}
		for _, lib := range sub.Bundled {
			if !have[lib.Name] {
				r.result.Bundled = append(r.result.Bundled, lib)
				have[lib.Name] = true
			}
		}
	}
}

func (p *Pipeline) stageLibraries(ctx context.Context, r *run, span ports.Span) error {
	if r.req.Strip {
		mainDst := filepath.Join(r.layout.BinDir(), filepath.Base(r.req.BinaryPath))
		if err := p.deps.Stripper.Strip(ctx, mainDst); err != nil {
			p.deps.Logger.Warn("strip failed for main executable: " + err.Error())
		}
	}

	total := len(r.result.Bundled)
	for i, lib := range r.result.Bundled {
		if _, done := r.deployed[lib.Name]; done {
			continue
		}
		dst, err := p.deployLibrary(r, lib)
		if err != nil {
			return err
		}
		if r.req.Strip {
			if err := p.deps.Stripper.Strip(ctx, dst); err != nil {
				p.deps.Logger.Warn("strip failed for " + lib.Name + ": " + err.Error())
			}
		}
		span.Progress(i+1, total)
	}

	if err := p.cleanupExcluded(r); err != nil {
		return err
	}

	p.deps.Logger.Info("deployed " + strconv.Itoa(len(r.deployed)) + " libraries")
	return nil
}

// deployLibrary copies one library into lib/ and records it.
func (p *Pipeline) deployLibrary(r *run, lib domain.Library) (string, error) {
	dst := filepath.Join(r.layout.LibDir(), lib.Name)
	entry, err := p.deps.Deployer.CopyFile(lib.Path, dst, r.req.AlwaysOverwrite)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to deploy library"), "library", lib.Name)
	}
	if err := os.Chmod(dst, 0o755); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to set library mode"), "library", lib.Name)
	}
	r.manifest.Record(r.rel(dst), entry)
	r.deployed[lib.Name] = dst
	return dst, nil
}

// cleanupExcluded removes exclude-listed libraries that slipped into lib/,
// typically left over from an earlier run in a different mode.
func (p *Pipeline) cleanupExcluded(r *run) error {
	entries, err := os.ReadDir(r.layout.LibDir())
	if err != nil {
		return zerr.Wrap(err, "failed to scan lib directory")
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, keep := r.deployed[entry.Name()]; keep {
			continue
		}
		if r.policy.Decide(entry.Name()) == domain.DecisionExclude {
			path := filepath.Join(r.layout.LibDir(), entry.Name())
			if err := os.Remove(path); err != nil {
				p.deps.Logger.Warn("failed to remove excluded " + entry.Name() + ": " + err.Error())
				continue
			}
			p.deps.Logger.Debug("removed excluded library " + entry.Name())
		}
	}
	return nil
}

func (p *Pipeline) stageStackPatch(r *run) error {
	for path := range p.deps.Walker.WalkELFFiles(r.layout.Root) {
		patched, err := p.deps.Patcher.FixExecutableStack(path)
		if err != nil {
			p.deps.Logger.Warn("stack patch failed for " + r.rel(path) + ": " + err.Error())
			continue
		}
		if patched {
			p.deps.Logger.Debug("cleared executable stack on " + r.rel(path))
		}
	}
	return nil
}

func (p *Pipeline) stageRunPaths(ctx context.Context, r *run) error {
	for path := range p.deps.Walker.WalkELFFiles(r.layout.Root) {
		if err := p.setRunPath(ctx, r, path, r.classFor(path)); err != nil {
			return err
		}
	}
	return nil
}

// setRunPath rewrites the run path of one artifact, falling back to the
// reduced entry set when the file has no room for the full one. A missing
// editor tool degrades the step instead of failing the deployment.
func (p *Pipeline) setRunPath(ctx context.Context, r *run, path string, class domain.ArtifactClass) error {
	if err := p.deps.Editor.ClearRunPath(ctx, path); err != nil {
		if errors.Is(err, domain.ErrToolUnavailable) {
			p.skipRelink(r, path)
			return nil
		}
		p.deps.Logger.Warn("failed to clear run path on " + r.rel(path) + ": " + err.Error())
	}

	runPath := r.layout.RunPathFor(class, filepath.Dir(path))
	if err := p.deps.Editor.SetRunPath(ctx, path, runPath); err != nil {
		if errors.Is(err, domain.ErrToolUnavailable) {
			p.skipRelink(r, path)
			return nil
		}
		p.deps.Logger.Warn("retrying with fallback run path on " + r.rel(path))
		if err := p.deps.Editor.SetRunPath(ctx, path, domain.FallbackRunPath()); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to set run path"), "file", r.rel(path))
		}
	}
	return nil
}

// skipRelink records that an artifact keeps its original run path because no
// editor tool is installed.
func (p *Pipeline) skipRelink(r *run, path string) {
	msg := "run path editor unavailable, leaving " + r.rel(path) + " untouched"
	p.deps.Logger.Warn(msg)
	r.warn(msg)
}

// classFor derives the artifact class from its location in the bundle.
func (r *run) classFor(path string) domain.ArtifactClass {
	switch {
	case filepath.Dir(path) == r.layout.BinDir():
		return domain.ClassMainBinary
	case strings.HasPrefix(path, r.layout.PluginsDir()+string(filepath.Separator)):
		return domain.ClassPlugin
	case strings.HasPrefix(path, r.layout.QMLDir()+string(filepath.Separator)):
		return domain.ClassQMLModule
	case strings.HasPrefix(path, r.layout.LibexecDir()+string(filepath.Separator)):
		return domain.ClassHelper
	default:
		return domain.ClassLibrary
	}
}

// finishELF applies the per-artifact post-copy steps to files deployed after
// the tree-wide patch and run-path stages have run.
func (p *Pipeline) finishELF(ctx context.Context, r *run, path string, class domain.ArtifactClass) error {
	if err := os.Chmod(path, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set artifact mode"), "file", r.rel(path))
	}
	if _, err := p.deps.Patcher.FixExecutableStack(path); err != nil {
		p.deps.Logger.Warn("stack patch failed for " + r.rel(path) + ": " + err.Error())
	}
	if r.req.Strip {
		if err := p.deps.Stripper.Strip(ctx, path); err != nil {
			p.deps.Logger.Warn("strip failed for " + r.rel(path) + ": " + err.Error())
		}
	}
	return p.setRunPath(ctx, r, path, class)
}

// deployClosure bundles any not-yet-deployed libraries a late artifact
// (plugin, QML module, helper) depends on.
func (p *Pipeline) deployClosure(ctx context.Context, r *run, srcPath string) {
	sub, err := p.deps.Resolver.Resolve(ctx, srcPath, r.policy, r.extraDirs())
	if err != nil {
		p.deps.Logger.Warn("failed to resolve " + filepath.Base(srcPath) + ": " + err.Error())
		return
	}
	for _, lib := range sub.Bundled {
		if _, done := r.deployed[lib.Name]; done {
			continue
		}
		dst, err := p.deployLibrary(r, lib)
		if err != nil {
			p.deps.Logger.Warn(err.Error())
			continue
		}
		if err := p.finishELF(ctx, r, dst, domain.ClassLibrary); err != nil {
			p.deps.Logger.Warn(err.Error())
		}
	}
}
