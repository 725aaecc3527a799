package domain

import (
	"path/filepath"
	"strings"
)

// LayoutStyle selects how the AppDir tree is arranged.
type LayoutStyle int

const (
	// LayoutFlat places the main binary at the AppDir root with lib/, plugins/
	// and qml/ beside it.
	LayoutFlat LayoutStyle = iota
	// LayoutFHS mirrors a filesystem hierarchy under usr/.
	LayoutFHS
)

// String returns the string representation of the LayoutStyle.
func (s LayoutStyle) String() string {
	if s == LayoutFHS {
		return "fhs"
	}
	return "flat"
}

// ArtifactClass categorizes a deployed file for run-path computation.
type ArtifactClass int

const (
	// ClassMainBinary is the application executable itself.
	ClassMainBinary ArtifactClass = iota
	// ClassLibrary is a shared library deployed into the lib directory.
	ClassLibrary
	// ClassPlugin is a framework plugin under plugins/.
	ClassPlugin
	// ClassQMLModule is a QML module plugin under qml/, possibly deeply nested.
	ClassQMLModule
	// ClassHelper is an auxiliary executable such as the WebEngine sandbox
	// process under libexec/.
	ClassHelper
)

// Layout resolves every directory of an AppDir from its root and style. All
// methods are pure path arithmetic; nothing is created on disk.
type Layout struct {
	Root  string
	Style LayoutStyle
}

// NewLayout creates a layout rooted at the given AppDir path.
func NewLayout(root string, style LayoutStyle) *Layout {
	return &Layout{Root: root, Style: style}
}

// AppRun returns the path of the AppRun entry point.
func (l *Layout) AppRun() string { return filepath.Join(l.Root, "AppRun") }

// BinDir returns the directory holding the main executable.
func (l *Layout) BinDir() string {
	if l.Style == LayoutFHS {
		return filepath.Join(l.Root, "usr", "bin")
	}
	return l.Root
}

// prefixed joins a layout directory under the root, nested below usr/ in FHS
// mode.
func (l *Layout) prefixed(name string) string {
	if l.Style == LayoutFHS {
		return filepath.Join(l.Root, "usr", name)
	}
	return filepath.Join(l.Root, name)
}

// LibDir returns the bundled library directory.
func (l *Layout) LibDir() string { return l.prefixed("lib") }

// PluginsDir returns the framework plugin directory.
func (l *Layout) PluginsDir() string { return l.prefixed("plugins") }

// QMLDir returns the QML module directory.
func (l *Layout) QMLDir() string { return l.prefixed("qml") }

// TranslationsDir returns the translation catalog directory.
func (l *Layout) TranslationsDir() string { return l.prefixed("translations") }

// ShareDir returns the shared data directory.
func (l *Layout) ShareDir() string { return l.prefixed("share") }

// DocDir returns the documentation directory.
func (l *Layout) DocDir() string {
	if l.Style == LayoutFHS {
		return filepath.Join(l.Root, "usr", "share", "doc")
	}
	return filepath.Join(l.Root, "doc")
}

// LibexecDir returns the helper executable directory.
func (l *Layout) LibexecDir() string { return l.prefixed("libexec") }

// ResourcesDir returns the framework resource directory.
func (l *Layout) ResourcesDir() string { return l.prefixed("resources") }

// QtConf returns the path of the qt.conf file, which lives next to the main
// executable.
func (l *Layout) QtConf() string { return filepath.Join(l.BinDir(), "qt.conf") }

// QtConfPrefix returns the Prefix value written into qt.conf, relative to the
// main executable.
func (l *Layout) QtConfPrefix() string {
	if l.Style == LayoutFHS {
		return "../"
	}
	return "./"
}

// Dirs returns every directory the layout requires, for creation in one pass.
func (l *Layout) Dirs() []string {
	return []string{
		l.BinDir(),
		l.LibDir(),
		l.PluginsDir(),
		l.QMLDir(),
		l.TranslationsDir(),
		l.ShareDir(),
		l.DocDir(),
		l.LibexecDir(),
		l.ResourcesDir(),
	}
}

// RunPathFor computes the $ORIGIN-relative run path for a deployed artifact.
// artifactDir is the directory holding the artifact inside the AppDir. Every
// entry is relative by construction; callers never see an absolute path here.
func (l *Layout) RunPathFor(class ArtifactClass, artifactDir string) string {
	entries := []string{"$ORIGIN"}

	if rel, err := filepath.Rel(artifactDir, l.LibDir()); err == nil {
		entries = append(entries, "$ORIGIN/"+filepath.ToSlash(rel))
	} else {
		entries = append(entries, "$ORIGIN/../lib")
	}

	switch class {
	case ClassPlugin:
		entries = append(entries, "$ORIGIN/../../lib", "$ORIGIN/../../../lib")
	case ClassQMLModule:
		entries = append(entries,
			"$ORIGIN/../../lib",
			"$ORIGIN/../../../lib",
			"$ORIGIN/../../../../lib",
		)
	default:
		entries = append(entries, "$ORIGIN/lib", "$ORIGIN/../lib")
	}

	if l.Style == LayoutFHS {
		entries = append(entries, "$ORIGIN/../../lib", "$ORIGIN/../usr/lib")
	}

	return strings.Join(dedupe(entries), ":")
}

// FallbackRunPath is the reduced run path used when an artifact has no room
// for the full entry set.
func FallbackRunPath() string { return "$ORIGIN:$ORIGIN/../lib" }

func dedupe(entries []string) []string {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
