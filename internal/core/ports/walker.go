package ports

import "iter"

// FileWalker enumerates files under a deployed tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type FileWalker interface {
	// WalkFiles yields all regular files under root, skipping ignored
	// directory names.
	WalkFiles(root string, ignores []string) iter.Seq[string]

	// WalkELFFiles yields the regular files under root that carry an ELF
	// magic, skipping symlinks.
	WalkELFFiles(root string) iter.Seq[string]
}
