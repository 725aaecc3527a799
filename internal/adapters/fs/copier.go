package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Copier copies files into the AppDir, verifying each copy against the
// source digest.
type Copier struct {
	hasher ports.FileHasher
	logger ports.Logger
}

// NewCopier creates a new Copier.
func NewCopier(hasher ports.FileHasher, logger ports.Logger) *Copier {
	return &Copier{hasher: hasher, logger: logger}
}

var _ ports.FileDeployer = (*Copier)(nil)

// CopyFile copies src to dst, creating parent directories and preserving the
// file mode. An existing dst is left alone unless overwrite is set. The
// returned entry carries the verified digest of the copy.
func (c *Copier) CopyFile(src, dst string, overwrite bool) (domain.ManifestEntry, error) {
	if _, err := os.Stat(dst); err == nil && !overwrite {
		c.logger.Debug("exists, not overwriting: " + dst)
		digest, err := c.hasher.ComputeFileHash(dst)
		if err != nil {
			return domain.ManifestEntry{}, err
		}
		info, err := os.Stat(dst)
		if err != nil {
			return domain.ManifestEntry{}, zerr.Wrap(err, "stat existing copy")
		}
		return domain.ManifestEntry{Source: src, Digest: digest, Size: info.Size()}, nil
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return domain.ManifestEntry{}, zerr.With(zerr.Wrap(err, "stat source"), "path", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return domain.ManifestEntry{}, zerr.Wrap(err, "create target directory")
	}

	if err := copyContents(src, dst, srcInfo.Mode()); err != nil {
		return domain.ManifestEntry{}, err
	}

	srcDigest, err := c.hasher.ComputeFileHash(src)
	if err != nil {
		return domain.ManifestEntry{}, err
	}
	dstDigest, err := c.hasher.ComputeFileHash(dst)
	if err != nil {
		return domain.ManifestEntry{}, err
	}
	if srcDigest != dstDigest {
		return domain.ManifestEntry{}, zerr.With(zerr.New("copy verification failed"), "path", dst)
	}

	return domain.ManifestEntry{Source: src, Digest: dstDigest, Size: srcInfo.Size()}, nil
}

// CopyTree copies a directory recursively, returning the manifest entries of
// every copied file keyed by path relative to dstRoot's parent structure.
func (c *Copier) CopyTree(srcRoot, dstRoot string, overwrite bool) (map[string]domain.ManifestEntry, error) {
	entries := make(map[string]domain.ManifestEntry)

	err := filepath.WalkDir(srcRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return zerr.Wrap(err, "relative path")
		}
		target := filepath.Join(dstRoot, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if d.Type()&os.ModeSymlink != 0 {
			return copySymlink(path, target, overwrite)
		}

		entry, err := c.CopyFile(path, target, overwrite)
		if err != nil {
			return err
		}
		entries[target] = entry
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "copy tree"), "src", srcRoot)
	}
	return entries, nil
}

func copyContents(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // deployment source
	if err != nil {
		return zerr.Wrap(err, "open source")
	}
	defer in.Close() //nolint:errcheck // read-only close

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm()) //nolint:gosec // deployment target
	if err != nil {
		return zerr.Wrap(err, "open target")
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck,gosec // error path
		return zerr.Wrap(err, "copy contents")
	}
	return out.Close()
}

func copySymlink(src, dst string, overwrite bool) error {
	target, err := os.Readlink(src)
	if err != nil {
		return zerr.Wrap(err, "read symlink")
	}
	if _, err := os.Lstat(dst); err == nil {
		if !overwrite {
			return nil
		}
		if err := os.Remove(dst); err != nil {
			return zerr.Wrap(err, "replace symlink")
		}
	}
	return os.Symlink(target, dst)
}
