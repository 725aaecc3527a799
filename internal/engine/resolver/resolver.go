// Package resolver walks the shared-library closure of a binary and applies
// the bundling policy to every library it finds.
package resolver

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result is the outcome of one resolution pass.
type Result struct {
	// Bundled are the libraries the policy selected for deployment,
	// sorted by soname.
	Bundled []domain.Library
	// Excluded are the libraries assumed present on every target system.
	Excluded []domain.Library
	// Version is the framework version detected from the closure.
	Version domain.QtVersion
}

// Summary condenses the result into counters.
func (r *Result) Summary() domain.ResolveSummary {
	return domain.ResolveSummary{
		Bundled:  len(r.Bundled),
		Excluded: len(r.Excluded),
		Version:  r.Version,
	}
}

// Resolver drives the closure walk through a DependencyLister.
type Resolver struct {
	lister   ports.DependencyLister
	searcher ports.LibrarySearcher
	logger   ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(lister ports.DependencyLister, searcher ports.LibrarySearcher, logger ports.Logger) *Resolver {
	return &Resolver{
		lister:   lister,
		searcher: searcher,
		logger:   logger,
	}
}

// Resolve walks the dependency closure starting at binaryPath. Libraries the
// dynamic linker could not resolve are retried through the searcher with the
// given extra directories; any still missing after the walk make the whole
// resolution fail.
func (r *Resolver) Resolve(ctx context.Context, binaryPath string, policy *domain.BundlingPolicy, extraDirs []string) (*Result, error) {
	res := &Result{}

	queue := []string{binaryPath}
	walked := map[string]bool{binaryPath: true}
	seen := map[string]bool{}
	var missing []string

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "dependency resolution cancelled")
		}

		path := queue[0]
		queue = queue[1:]

		deps, err := r.lister.ListDependencies(ctx, path)
		if err != nil {
			// Only the root binary has to resolve; a bundled library that
			// cannot be listed keeps whatever the linker already gave us.
			if path == binaryPath {
				return nil, zerr.With(zerr.Wrap(err, "failed to list dependencies"), "binary", path)
			}
			r.logger.Warn("failed to list dependencies of " + path + ": " + err.Error())
			continue
		}

		for _, dep := range deps {
			if seen[dep.Name] {
				continue
			}
			seen[dep.Name] = true

			if dep.Path == "" {
				dep.Path = r.searcher.FindLibrary(dep.Name, extraDirs)
			}
			if dep.Path == "" {
				missing = append(missing, dep.Name)
				continue
			}

			if v := domain.DetectQtVersion(dep.Path); v.Detected() && !res.Version.Detected() {
				res.Version = v
			}

			switch policy.Decide(dep.Path) {
			case domain.DecisionBundle:
				res.Bundled = append(res.Bundled, dep)
				if !walked[dep.Path] {
					walked[dep.Path] = true
					queue = append(queue, dep.Path)
				}
			default:
				res.Excluded = append(res.Excluded, dep)
			}
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		err := zerr.Wrap(domain.ErrLibraryNotFound, "unresolved shared libraries: "+strings.Join(missing, ", "))
		return nil, zerr.With(err, "count", len(missing))
	}

	sort.Slice(res.Bundled, func(i, j int) bool { return res.Bundled[i].Name < res.Bundled[j].Name })
	sort.Slice(res.Excluded, func(i, j int) bool { return res.Excluded[i].Name < res.Excluded[j].Name })

	r.logger.Debug("resolved closure: " + strconv.Itoa(len(res.Bundled)) + " bundled, " +
		strconv.Itoa(len(res.Excluded)) + " excluded")

	return res, nil
}
