// Package manifest persists the deployment manifest inside an AppDir.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the manifest file written at the AppDir root.
const Filename = ".qtdeploy-manifest.json"

// Store implements ports.ManifestStore using a flat JSON file.
type Store struct{}

// NewStore creates a new manifest store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the manifest from the given AppDir. A missing manifest returns
// nil without an error so a first deployment starts from scratch.
func (s *Store) Load(appDir string) (*domain.Manifest, error) {
	path := filepath.Join(appDir, Filename)
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read deployment manifest")
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal deployment manifest")
	}
	return &m, nil
}

// Save writes the manifest to the given AppDir.
func (s *Store) Save(appDir string, m *domain.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal deployment manifest")
	}

	if err := os.MkdirAll(appDir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create AppDir for manifest")
	}

	path := filepath.Join(appDir, Filename)
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write deployment manifest")
	}
	return nil
}

var _ ports.ManifestStore = (*Store)(nil)
