package ports

import "context"

// RunPathEditor reads and rewrites the RPATH/RUNPATH of ELF files.
//
//go:generate go run go.uber.org/mock/mockgen -source=relinker.go -destination=mocks/mock_relinker.go -package=mocks
type RunPathEditor interface {
	// ReadRunPath returns the current run path of the file, empty when none
	// is set.
	ReadRunPath(ctx context.Context, path string) (string, error)

	// ClearRunPath removes any existing run path from the file.
	ClearRunPath(ctx context.Context, path string) error

	// SetRunPath replaces the run path of the file.
	SetRunPath(ctx context.Context, path, runPath string) error
}
