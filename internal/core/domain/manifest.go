package domain

import "time"

// ManifestEntry records one file deployed into the AppDir.
type ManifestEntry struct {
	// Source is the host path the file was copied from.
	Source string `json:"source"`
	// Digest is the content hash of the deployed copy.
	Digest string `json:"digest"`
	// Size is the deployed file size in bytes.
	Size int64 `json:"size"`
}

// Manifest is the record of a deployment run, written into the AppDir so
// later runs can tell what is already in place.
type Manifest struct {
	CreatedAt time.Time `json:"created_at"`
	Binary    string    `json:"binary"`
	Mode      string    `json:"mode"`
	QtVersion QtVersion `json:"qt_version"`
	// Entries maps AppDir-relative paths to their provenance.
	Entries map[string]ManifestEntry `json:"entries"`
}

// NewManifest creates an empty manifest for the given binary and mode.
func NewManifest(binary string, mode BundleMode, version QtVersion) *Manifest {
	return &Manifest{
		CreatedAt: time.Now().UTC(),
		Binary:    binary,
		Mode:      mode.String(),
		QtVersion: version,
		Entries:   make(map[string]ManifestEntry),
	}
}

// Record adds or replaces the entry for an AppDir-relative path.
func (m *Manifest) Record(relPath string, entry ManifestEntry) {
	m.Entries[relPath] = entry
}

// Has reports whether a deployed file is already recorded.
func (m *Manifest) Has(relPath string) bool {
	_, ok := m.Entries[relPath]
	return ok
}
