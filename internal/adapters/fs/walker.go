// Package fs provides file system adapters for walking, hashing and copying
// deployed files.
package fs

import (
	"bytes"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/qtdeploy/internal/core/ports"
)

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

var _ ports.FileWalker = (*Walker)(nil)

// WalkFiles yields all regular files under root, skipping ignored directories.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip := w.shouldSkip(d, ignores); skip != nil {
				return skip
			}
			if d.IsDir() {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// WalkELFFiles yields the files under root that start with the ELF magic.
// Symlinks are skipped so every image is visited once.
func (w *Walker) WalkELFFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, nil) {
			info, err := os.Lstat(path)
			if err != nil || info.Mode()&os.ModeSymlink != 0 {
				continue
			}
			if !IsELF(path) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// IsELF reports whether the file starts with the ELF magic bytes.
func IsELF(path string) bool {
	f, err := os.Open(path) //nolint:gosec // path comes from our own walk
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck // read-only close

	header := make([]byte, 4)
	if _, err := f.Read(header); err != nil {
		return false
	}
	return bytes.Equal(header, elfMagic)
}

func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) error {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
	}
	return nil
}
