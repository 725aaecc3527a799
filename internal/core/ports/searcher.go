package ports

// LibrarySearcher locates a shared library by soname in the host's library
// directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=searcher.go -destination=mocks/mock_searcher.go -package=mocks
type LibrarySearcher interface {
	// FindLibrary returns the absolute path of the library with the given
	// soname, searching extraDirs before the standard system directories.
	// It returns an empty string when the library cannot be found.
	FindLibrary(soname string, extraDirs []string) string
}
