package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/zerr"
)

func (p *Pipeline) stagePlugins(ctx context.Context, r *run) error {
	if !r.located {
		p.deps.Logger.Info("no framework install, skipping plugins")
		return nil
	}

	for _, plugin := range r.components.Plugins {
		// Entries with a slash name a single mandatory plugin file; bare
		// entries name a whole plugin directory.
		if strings.Contains(plugin, "/") {
			p.deployPluginFile(ctx, r, plugin)
		} else {
			p.deployPluginDir(ctx, r, plugin)
		}
	}

	p.deployQMLModules(ctx, r)
	return nil
}

func (p *Pipeline) deployPluginFile(ctx context.Context, r *run, rel string) {
	src := filepath.Join(r.install.Plugins, filepath.FromSlash(rel))
	if _, err := os.Stat(src); err != nil {
		p.deps.Logger.Warn("plugin not found in install: " + rel)
		r.warn("plugin missing: " + rel)
		return
	}

	dst := filepath.Join(r.layout.PluginsDir(), filepath.FromSlash(rel))
	entry, err := p.deps.Deployer.CopyFile(src, dst, r.req.AlwaysOverwrite)
	if err != nil {
		p.deps.Logger.Warn("failed to deploy plugin " + rel + ": " + err.Error())
		r.warn("plugin failed: " + rel)
		return
	}
	r.manifest.Record(r.rel(dst), entry)

	if err := p.finishELF(ctx, r, dst, domain.ClassPlugin); err != nil {
		p.deps.Logger.Warn(err.Error())
	}
	p.deployClosure(ctx, r, src)
}

func (p *Pipeline) deployPluginDir(ctx context.Context, r *run, name string) {
	src := filepath.Join(r.install.Plugins, name)
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		p.deps.Logger.Debug("plugin directory not in install: " + name)
		return
	}

	dst := filepath.Join(r.layout.PluginsDir(), name)
	entries, err := p.deps.Deployer.CopyTree(src, dst, r.req.AlwaysOverwrite)
	if err != nil {
		p.deps.Logger.Warn("failed to deploy plugins " + name + ": " + err.Error())
		r.warn("plugins failed: " + name)
		return
	}

	for path, entry := range entries {
		r.manifest.Record(r.rel(path), entry)
		if strings.Contains(filepath.Base(path), ".so") {
			if err := p.finishELF(ctx, r, path, domain.ClassPlugin); err != nil {
				p.deps.Logger.Warn(err.Error())
			}
			p.deployClosure(ctx, r, entry.Source)
		}
	}
	p.deps.Logger.Debug("deployed plugin directory " + name)
}

func (p *Pipeline) deployQMLModules(ctx context.Context, r *run) {
	if len(r.req.QMLDirs) == 0 {
		return
	}

	modules, err := p.deps.Scanner.Scan(ctx, r.install, r.req.QMLDirs)
	if err != nil {
		p.deps.Logger.Warn("qml import scan failed: " + err.Error())
		r.warn("qml scan failed")
		return
	}

	deployed := make(map[string]bool)
	for _, module := range modules {
		if !module.IsModule() || module.Path == "" || module.RelativePath == "" {
			continue
		}
		p.deployQMLModule(ctx, r, module.Path, module.RelativePath)
		deployed[module.RelativePath] = true
	}

	// Runtime-loaded style dependencies the scanner reports only indirectly.
	for _, rel := range domain.CriticalQMLModules(modules) {
		if deployed[rel] {
			continue
		}
		src := filepath.Join(r.install.QML, filepath.FromSlash(rel))
		if _, err := os.Stat(src); err != nil {
			continue
		}
		p.deployQMLModule(ctx, r, src, rel)
	}
}

func (p *Pipeline) deployQMLModule(ctx context.Context, r *run, src, rel string) {
	dst := filepath.Join(r.layout.QMLDir(), filepath.FromSlash(rel))
	entries, err := p.deps.Deployer.CopyTree(src, dst, r.req.AlwaysOverwrite)
	if err != nil {
		p.deps.Logger.Warn("failed to deploy qml module " + rel + ": " + err.Error())
		r.warn("qml module failed: " + rel)
		return
	}

	for path, entry := range entries {
		r.manifest.Record(r.rel(path), entry)
		if strings.Contains(filepath.Base(path), ".so") {
			if err := p.finishELF(ctx, r, path, domain.ClassQMLModule); err != nil {
				p.deps.Logger.Warn(err.Error())
			}
			p.deployClosure(ctx, r, entry.Source)
		}
	}
	p.deps.Logger.Debug("deployed qml module " + rel)
}

func (p *Pipeline) stageExtras(ctx context.Context, r *run) error {
	if r.located {
		p.deployTranslations(r)
		if r.components.WebEngine {
			p.deployWebEngine(ctx, r)
		}
	}
	return p.deployDesktopIntegration(r)
}

func (p *Pipeline) deployTranslations(r *run) {
	if r.install.Translations == "" {
		return
	}
	files, err := filepath.Glob(filepath.Join(r.install.Translations, "*.qm"))
	if err != nil || len(files) == 0 {
		return
	}
	for _, src := range files {
		dst := filepath.Join(r.layout.TranslationsDir(), filepath.Base(src))
		entry, err := p.deps.Deployer.CopyFile(src, dst, r.req.AlwaysOverwrite)
		if err != nil {
			p.deps.Logger.Warn("failed to deploy translation " + filepath.Base(src) + ": " + err.Error())
			continue
		}
		r.manifest.Record(r.rel(dst), entry)
	}
	p.deps.Logger.Debug("deployed " + strconv.Itoa(len(files)) + " translations")
}

func (p *Pipeline) deployWebEngine(ctx context.Context, r *run) {
	// Sandboxed renderer process.
	helper := filepath.Join(r.install.LibExecs, "QtWebEngineProcess")
	if _, err := os.Stat(helper); err == nil {
		dst := filepath.Join(r.layout.LibexecDir(), "QtWebEngineProcess")
		if entry, err := p.deps.Deployer.CopyFile(helper, dst, r.req.AlwaysOverwrite); err != nil {
			p.deps.Logger.Warn("failed to deploy QtWebEngineProcess: " + err.Error())
			r.warn("webengine helper failed")
		} else {
			r.manifest.Record(r.rel(dst), entry)
			if err := p.finishELF(ctx, r, dst, domain.ClassHelper); err != nil {
				p.deps.Logger.Warn(err.Error())
			}
			p.deployClosure(ctx, r, helper)
		}
	}

	// Resource packs and the ICU data blob.
	resources, _ := filepath.Glob(filepath.Join(r.install.Data, "resources", "*.pak"))
	if icu := filepath.Join(r.install.Data, "resources", "icudtl.dat"); fileExists(icu) {
		resources = append(resources, icu)
	}
	for _, src := range resources {
		dst := filepath.Join(r.layout.ResourcesDir(), filepath.Base(src))
		entry, err := p.deps.Deployer.CopyFile(src, dst, r.req.AlwaysOverwrite)
		if err != nil {
			p.deps.Logger.Warn("failed to deploy resource " + filepath.Base(src) + ": " + err.Error())
			continue
		}
		r.manifest.Record(r.rel(dst), entry)
	}

	// Locale catalogs.
	locales := filepath.Join(r.install.Translations, "qtwebengine_locales")
	if fileExists(locales) {
		dst := filepath.Join(r.layout.TranslationsDir(), "qtwebengine_locales")
		entries, err := p.deps.Deployer.CopyTree(locales, dst, r.req.AlwaysOverwrite)
		if err != nil {
			p.deps.Logger.Warn("failed to deploy webengine locales: " + err.Error())
		} else {
			for path, entry := range entries {
				r.manifest.Record(r.rel(path), entry)
			}
		}
	}
}

func (p *Pipeline) deployDesktopIntegration(r *run) error {
	if r.req.DesktopFile != "" {
		dst := filepath.Join(r.layout.Root, filepath.Base(r.req.DesktopFile))
		entry, err := p.deps.Deployer.CopyFile(r.req.DesktopFile, dst, r.req.AlwaysOverwrite)
		if err != nil {
			return zerr.Wrap(err, "failed to deploy desktop file")
		}
		r.manifest.Record(r.rel(dst), entry)
	}

	if r.req.IconFile != "" {
		dst := filepath.Join(r.layout.Root, filepath.Base(r.req.IconFile))
		entry, err := p.deps.Deployer.CopyFile(r.req.IconFile, dst, r.req.AlwaysOverwrite)
		if err != nil {
			return zerr.Wrap(err, "failed to deploy icon")
		}
		r.manifest.Record(r.rel(dst), entry)

		dirIcon := filepath.Join(r.layout.Root, ".DirIcon")
		entry, err = p.deps.Deployer.CopyFile(r.req.IconFile, dirIcon, true)
		if err != nil {
			return zerr.Wrap(err, "failed to deploy .DirIcon")
		}
		r.manifest.Record(r.rel(dirIcon), entry)
	}
	return nil
}

func (p *Pipeline) stageVerify(ctx context.Context, r *run) error {
	if err := p.deps.Store.Save(r.layout.Root, r.manifest); err != nil {
		return err
	}

	var bad []string
	for path := range p.deps.Walker.WalkELFFiles(r.layout.Root) {
		runPath, err := p.deps.Editor.ReadRunPath(ctx, path)
		if err != nil {
			p.deps.Logger.Warn("cannot audit " + r.rel(path) + ": " + err.Error())
			continue
		}
		if !hasAbsoluteEntry(runPath) {
			continue
		}

		// One best-effort repair before flagging the file.
		_ = p.deps.Editor.SetRunPath(ctx, path, r.layout.RunPathFor(r.classFor(path), filepath.Dir(path)))
		runPath, err = p.deps.Editor.ReadRunPath(ctx, path)
		if err != nil || hasAbsoluteEntry(runPath) {
			bad = append(bad, r.rel(path))
		}
	}

	if len(bad) > 0 {
		err := zerr.Wrap(domain.ErrAbsoluteRunPath, "appdir audit failed: "+strings.Join(bad, ", "))
		return zerr.With(err, "count", len(bad))
	}

	summary := r.result.Summary()
	p.deps.Logger.Info("deployment complete: " + strconv.Itoa(summary.Bundled) + " bundled, " +
		strconv.Itoa(summary.Excluded) + " excluded")
	return nil
}

func hasAbsoluteEntry(runPath string) bool {
	for _, entry := range strings.Split(runPath, ":") {
		if strings.HasPrefix(entry, "/") {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
