package ports

import "go.trai.ch/qtdeploy/internal/core/domain"

// FileDeployer copies artifacts into the AppDir and verifies each copy by
// content digest.
//
//go:generate go run go.uber.org/mock/mockgen -source=deployer.go -destination=mocks/mock_deployer.go -package=mocks
type FileDeployer interface {
	// CopyFile copies one file, creating parent directories as needed. An
	// existing destination is kept unless overwrite is set; either way the
	// returned entry describes the file now at dst.
	CopyFile(src, dst string, overwrite bool) (domain.ManifestEntry, error)

	// CopyTree copies a directory tree and returns an entry per copied file,
	// keyed by destination path.
	CopyTree(srcRoot, dstRoot string, overwrite bool) (map[string]domain.ManifestEntry, error)
}
