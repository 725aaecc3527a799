package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/qtdeploy/internal/core/ports"
)

// systemLibDirs are the directories the dynamic linker consults on common
// distributions, in search order.
var systemLibDirs = []string{
	"/usr/lib/x86_64-linux-gnu",
	"/usr/lib64",
	"/usr/lib",
	"/lib/x86_64-linux-gnu",
	"/lib64",
	"/lib",
	"/usr/local/lib",
}

var _ ports.LibrarySearcher = (*Searcher)(nil)

// Searcher locates shared libraries by soname on the host.
type Searcher struct{}

// NewSearcher creates a new Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// FindLibrary returns the absolute path of the library with the given soname,
// searching extraDirs before the system directories. Empty when not found.
func (s *Searcher) FindLibrary(soname string, extraDirs []string) string {
	if soname == "" {
		return ""
	}

	dirs := make([]string, 0, len(extraDirs)+len(systemLibDirs))
	dirs = append(dirs, extraDirs...)
	dirs = append(dirs, systemLibDirs...)

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, soname)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
