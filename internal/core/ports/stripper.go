package ports

import "context"

// Stripper removes symbol tables from deployed binaries.
//
//go:generate go run go.uber.org/mock/mockgen -source=stripper.go -destination=mocks/mock_stripper.go -package=mocks
type Stripper interface {
	// Strip discards the symbol table of the file in place.
	Strip(ctx context.Context, path string) error
}
