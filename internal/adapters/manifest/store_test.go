package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/qtdeploy/internal/adapters/manifest"
	"go.trai.ch/qtdeploy/internal/core/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	appDir := t.TempDir()
	store := manifest.NewStore()

	m := domain.NewManifest("/src/bin/app", domain.BundleDefault, domain.Qt6)
	m.Record("lib/libQt6Core.so.6", domain.ManifestEntry{
		Source: "/opt/qt6/lib/libQt6Core.so.6",
		Digest: "00deadbeef00cafe",
		Size:   4096,
	})

	require.NoError(t, store.Save(appDir, m))

	got, err := store.Load(appDir)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "/src/bin/app", got.Binary)
	assert.Equal(t, domain.Qt6, got.QtVersion)
	assert.True(t, got.Has("lib/libQt6Core.so.6"), "recorded entry must survive a round trip")
	assert.Equal(t, "00deadbeef00cafe", got.Entries["lib/libQt6Core.so.6"].Digest)
}

func TestStore_LoadMissing(t *testing.T) {
	store := manifest.NewStore()

	got, err := store.Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got, "a missing manifest is not an error")
}

func TestStore_LoadCorrupt(t *testing.T) {
	appDir := t.TempDir()
	path := filepath.Join(appDir, manifest.Filename)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := manifest.NewStore()
	_, err := store.Load(appDir)
	require.Error(t, err)
}

func TestStore_SaveCreatesAppDir(t *testing.T) {
	root := t.TempDir()
	appDir := filepath.Join(root, "dist", "AppDir")
	store := manifest.NewStore()

	m := domain.NewManifest("app", domain.BundleEverything, domain.Qt5)
	require.NoError(t, store.Save(appDir, m))

	assert.FileExists(t, filepath.Join(appDir, manifest.Filename))
}
