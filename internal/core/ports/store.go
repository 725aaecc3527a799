package ports

import "go.trai.ch/qtdeploy/internal/core/domain"

// ManifestStore persists the deployment manifest inside an AppDir.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Load reads the manifest of a previous run, or returns nil when the
	// AppDir has none.
	Load(appDir string) (*domain.Manifest, error)

	// Save writes the manifest into the AppDir.
	Save(appDir string, manifest *domain.Manifest) error
}
