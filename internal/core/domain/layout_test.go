package domain_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/qtdeploy/internal/core/domain"
)

func TestLayout_Flat(t *testing.T) {
	l := domain.NewLayout("/tmp/App.AppDir", domain.LayoutFlat)

	assert.Equal(t, "/tmp/App.AppDir", l.BinDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "lib"), l.LibDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "plugins"), l.PluginsDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "qml"), l.QMLDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "doc"), l.DocDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "AppRun"), l.AppRun())
	assert.Equal(t, "./", l.QtConfPrefix())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "qt.conf"), l.QtConf())
}

func TestLayout_FHS(t *testing.T) {
	l := domain.NewLayout("/tmp/App.AppDir", domain.LayoutFHS)

	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "usr", "bin"), l.BinDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "usr", "lib"), l.LibDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "usr", "plugins"), l.PluginsDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "usr", "qml"), l.QMLDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "usr", "translations"), l.TranslationsDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "usr", "libexec"), l.LibexecDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "usr", "resources"), l.ResourcesDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "usr", "share", "doc"), l.DocDir())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "AppRun"), l.AppRun())
	assert.Equal(t, "../", l.QtConfPrefix())
	assert.Equal(t, filepath.Join("/tmp/App.AppDir", "usr", "bin", "qt.conf"), l.QtConf())
}

func TestLayout_Dirs(t *testing.T) {
	l := domain.NewLayout("/tmp/App.AppDir", domain.LayoutFlat)

	dirs := l.Dirs()
	require.NotEmpty(t, dirs)
	for _, d := range dirs {
		assert.True(t, strings.HasPrefix(d, "/tmp/App.AppDir"), "dir %q escapes the root", d)
	}
}

func TestLayout_RunPathFor(t *testing.T) {
	root := "/tmp/App.AppDir"
	l := domain.NewLayout(root, domain.LayoutFlat)

	tests := []struct {
		name        string
		class       domain.ArtifactClass
		artifactDir string
		wantFirst   string
		wantContain []string
	}{
		{
			name:        "main binary at root",
			class:       domain.ClassMainBinary,
			artifactDir: root,
			wantFirst:   "$ORIGIN",
			wantContain: []string{"$ORIGIN/lib"},
		},
		{
			name:        "library in lib dir",
			class:       domain.ClassLibrary,
			artifactDir: filepath.Join(root, "lib"),
			wantFirst:   "$ORIGIN",
			wantContain: []string{"$ORIGIN/../lib"},
		},
		{
			name:        "platform plugin",
			class:       domain.ClassPlugin,
			artifactDir: filepath.Join(root, "plugins", "platforms"),
			wantFirst:   "$ORIGIN",
			wantContain: []string{"$ORIGIN/../../lib", "$ORIGIN/../../../lib"},
		},
		{
			name:        "deep qml module",
			class:       domain.ClassQMLModule,
			artifactDir: filepath.Join(root, "qml", "QtQuick", "Controls.2"),
			wantFirst:   "$ORIGIN",
			wantContain: []string{"$ORIGIN/../../../lib", "$ORIGIN/../../../../lib"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rp := l.RunPathFor(tt.class, tt.artifactDir)
			entries := strings.Split(rp, ":")

			require.NotEmpty(t, entries)
			assert.Equal(t, tt.wantFirst, entries[0])
			for _, want := range tt.wantContain {
				assert.Contains(t, entries, want)
			}
			for _, e := range entries {
				assert.True(t, strings.HasPrefix(e, "$ORIGIN"), "entry %q is not origin-relative", e)
			}
		})
	}
}

func TestLayout_RunPathFor_NoDuplicates(t *testing.T) {
	l := domain.NewLayout("/tmp/App.AppDir", domain.LayoutFHS)
	rp := l.RunPathFor(domain.ClassMainBinary, l.BinDir())

	seen := map[string]bool{}
	for _, e := range strings.Split(rp, ":") {
		assert.False(t, seen[e], "duplicate entry %q", e)
		seen[e] = true
	}
}

func TestFallbackRunPath(t *testing.T) {
	for _, e := range strings.Split(domain.FallbackRunPath(), ":") {
		assert.True(t, strings.HasPrefix(e, "$ORIGIN"))
	}
}
