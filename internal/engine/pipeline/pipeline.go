// Package pipeline implements the sequential deployment state machine.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/qtdeploy/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Deps bundles the collaborators a Pipeline needs.
type Deps struct {
	Logger   ports.Logger
	Tracer   ports.Tracer
	Locator  ports.QtLocator
	Resolver *resolver.Resolver
	Deployer ports.FileDeployer
	Walker   ports.FileWalker
	Editor   ports.RunPathEditor
	Stripper ports.Stripper
	Patcher  ports.StackPatcher
	Scanner  ports.QMLScanner
	Store    ports.ManifestStore
}

// Pipeline runs the deployment stages strictly in order. Optional stages log
// their failure and let the run continue; every other stage aborts it.
type Pipeline struct {
	deps Deps
}

// New creates a new Pipeline.
func New(deps Deps) *Pipeline {
	return &Pipeline{deps: deps}
}

// Report is the outcome of a completed deployment.
type Report struct {
	// AppDir is the absolute root of the produced bundle.
	AppDir string
	// Style is the directory layout the bundle uses.
	Style domain.LayoutStyle
	// Summary counts the resolution outcome.
	Summary domain.ResolveSummary
	// Manifest records every deployed file with its digest.
	Manifest *domain.Manifest
	// Warnings lists the optional steps that did not complete.
	Warnings []string
}

// run carries the mutable state threaded through the stages.
type run struct {
	req        domain.DeployRequest
	policy     *domain.BundlingPolicy
	layout     *domain.Layout
	install    domain.QtInstall
	located    bool
	result     *resolver.Result
	components domain.Components
	manifest   *domain.Manifest
	deployed   map[string]string // soname -> destination path
	warnings   []string
}

// rel returns path relative to the AppDir root, for manifest keys.
func (r *run) rel(path string) string {
	rel, err := filepath.Rel(r.layout.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func (r *run) warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

// extraDirs returns the directories searched for libraries the dynamic
// linker cannot resolve.
func (r *run) extraDirs() []string {
	dirs := append([]string{}, r.req.ExtraLibs...)
	if r.located && r.install.Libs != "" {
		dirs = append(dirs, r.install.Libs)
	}
	return dirs
}

// Run executes every deployment stage against the request.
func (p *Pipeline) Run(ctx context.Context, req domain.DeployRequest) (*Report, error) {
	policy := domain.NewBundlingPolicy(req.Mode)
	policy.ExtraExcluded = req.ExcludeLibs
	policy.ExtraKept = req.KeepLibs

	r := &run{
		req:      req,
		policy:   policy,
		deployed: make(map[string]string),
	}

	stages := domain.Stages()
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.String()
	}
	p.deps.Tracer.EmitPlan(ctx, names)

	for _, st := range stages {
		sctx, span := p.deps.Tracer.Start(ctx, st.String(), ports.WithWeight(stageWeight(st)))

		err := p.runStage(sctx, st, r, span)
		if err != nil {
			span.RecordError(err)
			span.End()

			if st.Optional() {
				p.deps.Logger.Warn(st.String() + " stage failed: " + err.Error())
				r.warn(st.String() + ": " + err.Error())
				continue
			}
			failed := zerr.Wrap(errors.Join(domain.ErrStageFailed, err), "deployment aborted")
			return nil, zerr.With(failed, "stage", st.String())
		}
		span.End()
	}

	return &Report{
		AppDir:   r.layout.Root,
		Style:    r.layout.Style,
		Summary:  r.result.Summary(),
		Manifest: r.manifest,
		Warnings: r.warnings,
	}, nil
}

func (p *Pipeline) runStage(ctx context.Context, st domain.Stage, r *run, span ports.Span) error {
	switch st {
	case domain.StageValidate:
		return p.stageValidate(r)
	case domain.StageLayout:
		return p.stageLayout(r)
	case domain.StageStructure:
		return p.stageStructure(r)
	case domain.StageResolve:
		return p.stageResolve(ctx, r, span)
	case domain.StageDetect:
		return p.stageDetect(ctx, r, span)
	case domain.StageLibraries:
		return p.stageLibraries(ctx, r, span)
	case domain.StageStackPatch:
		return p.stageStackPatch(r)
	case domain.StageRunPaths:
		return p.stageRunPaths(ctx, r)
	case domain.StagePlugins:
		return p.stagePlugins(ctx, r)
	case domain.StageExtras:
		return p.stageExtras(ctx, r)
	case domain.StageVerify:
		return p.stageVerify(ctx, r)
	default:
		return nil
	}
}

// stageWeight makes the progress bar reflect where the time actually goes.
func stageWeight(st domain.Stage) int {
	switch st {
	case domain.StageLibraries:
		return 3
	case domain.StagePlugins:
		return 2
	default:
		return 1
	}
}

func (p *Pipeline) stageValidate(r *run) error {
	path, err := filepath.Abs(r.req.BinaryPath)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve binary path")
	}
	r.req.BinaryPath = path

	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBinaryNotFound, "cannot deploy"), "binary", path)
	}
	if !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNotExecutable, "cannot deploy"), "binary", path)
	}
	if !isELF(path) {
		return zerr.With(zerr.Wrap(domain.ErrNotELF, "cannot deploy"), "binary", path)
	}

	// Companion files named on the request must exist before anything is
	// written to the AppDir.
	for _, companion := range []string{r.req.DesktopFile, r.req.IconFile, r.req.AppRunFile} {
		if companion == "" {
			continue
		}
		if _, err := os.Stat(companion); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrMissingCompanion, "cannot deploy"), "file", companion)
		}
	}

	if r.req.AppDir == "" {
		r.req.AppDir = "AppDir"
	}
	appDir, err := filepath.Abs(r.req.AppDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve appdir path")
	}
	r.req.AppDir = appDir

	return nil
}

func (p *Pipeline) stageLayout(r *run) error {
	style := domain.LayoutFlat
	// A binary installed under <prefix>/bin keeps its FHS hierarchy inside
	// the bundle; a launcher that references usr/ forces the same.
	if filepath.Base(filepath.Dir(r.req.BinaryPath)) == "bin" {
		style = domain.LayoutFHS
	}
	if r.req.AppRunFile != "" {
		if data, err := os.ReadFile(r.req.AppRunFile); err == nil && containsUsrRef(data) {
			style = domain.LayoutFHS
		}
	}

	r.layout = domain.NewLayout(r.req.AppDir, style)
	p.deps.Logger.Info("appdir layout: " + style.String())
	return nil
}

func (p *Pipeline) stageStructure(r *run) error {
	for _, dir := range r.layout.Dirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerr.With(zerr.Wrap(errors.Join(domain.ErrInvalidLayout, err), "failed to create appdir"), "dir", dir)
		}
	}

	if prev, err := p.deps.Store.Load(r.layout.Root); err != nil {
		p.deps.Logger.Warn("ignoring unreadable manifest: " + err.Error())
	} else if prev != nil {
		p.deps.Logger.Debug("appdir was previously deployed at " + prev.CreatedAt.String())
	}
	r.manifest = domain.NewManifest(r.req.BinaryPath, r.req.Mode, domain.QtUnknown)

	// Main executable.
	dst := filepath.Join(r.layout.BinDir(), filepath.Base(r.req.BinaryPath))
	entry, err := p.deps.Deployer.CopyFile(r.req.BinaryPath, dst, r.req.AlwaysOverwrite)
	if err != nil {
		return zerr.Wrap(err, "failed to deploy main executable")
	}
	if err := os.Chmod(dst, 0o755); err != nil {
		return zerr.Wrap(err, "failed to mark main executable")
	}
	r.manifest.Record(r.rel(dst), entry)

	if err := p.writeQtConf(r); err != nil {
		return err
	}
	return p.writeAppRun(r, dst)
}

func isELF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var magic [4]byte
	if _, err := f.Read(magic[:]); err != nil {
		return false
	}
	return magic == [4]byte{0x7f, 'E', 'L', 'F'}
}

func containsUsrRef(data []byte) bool {
	return bytes.Contains(data, []byte("usr/bin")) || bytes.Contains(data, []byte("usr/lib"))
}
