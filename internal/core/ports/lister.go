package ports

import (
	"context"

	"go.trai.ch/qtdeploy/internal/core/domain"
)

// DependencyLister reports the direct shared-library dependencies of one ELF
// binary, as the dynamic linker would resolve them on this host.
//
//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type DependencyLister interface {
	// ListDependencies returns the resolved direct dependencies of the binary.
	//
	// Unresolvable entries are returned with an empty Path so the caller can
	// decide whether that is fatal. Statically linked binaries yield an empty
	// list and no error.
	ListDependencies(ctx context.Context, binaryPath string) ([]domain.Library, error)
}
