// Package fsys is the filesystem collaborator for the indexing engine.
// It provides the three primitives the walker consumes: directory listing,
// per-entry metadata, and per-directory recursive byte totals. Each call
// can fail independently; the walker owns the skip policy.
package fsys

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// sizeCacheSize bounds the recursive-size memoization cache. A parent's
// recursive size revisits every child directory, so without memoization a
// deep walk recomputes subtree sums quadratically.
const sizeCacheSize = 4096

// Info is the metadata the engine needs about one filesystem object.
type Info struct {
	Size uint64
	Dir  bool
}

// FS is the collaborator interface consumed by the walker. Implementations
// other than OS exist only in tests, for failure injection.
type FS interface {
	// ListDir returns the names of dir's immediate children, sorted.
	ListDir(dir string) ([]string, error)
	// Stat returns metadata for a single path.
	Stat(path string) (Info, error)
	// RecursiveSize returns the total byte size of all files under dir.
	RecursiveSize(dir string) (uint64, error)
}

// OSOptions configures the OS-backed collaborator.
type OSOptions struct {
	// FollowSymlinks resolves symlinks when reading metadata
	// (default: false, symlinks are indexed as files with their own length).
	FollowSymlinks bool
}

// OS implements FS on the real filesystem.
type OS struct {
	opts OSOptions

	// sizeCache memoizes recursive sizes by directory path. Entries are
	// valid for the lifetime of the process, which is one indexing cycle
	// for the CLI.
	sizeCache *lru.Cache[string, uint64]
}

// NewOS creates the OS-backed collaborator.
func NewOS(opts OSOptions) (*OS, error) {
	cache, err := lru.New[string, uint64](sizeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create size cache: %w", err)
	}
	return &OS{opts: opts, sizeCache: cache}, nil
}

// ListDir returns the names of dir's immediate children in lexical order.
func (o *OS) ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Stat returns metadata for path. Symlinks are not followed unless
// configured, so a dangling link is still indexable as a file.
func (o *OS) Stat(path string) (Info, error) {
	var fi os.FileInfo
	var err error
	if o.opts.FollowSymlinks {
		fi, err = os.Stat(path)
	} else {
		fi, err = os.Lstat(path)
	}
	if err != nil {
		return Info{}, err
	}
	return Info{Size: uint64(fi.Size()), Dir: fi.IsDir()}, nil
}

// RecursiveSize returns the total byte size of all files under dir.
// Unreadable children are skipped rather than failing the whole sum; only
// an unreadable dir itself is an error. Results are memoized.
func (o *OS) RecursiveSize(dir string) (uint64, error) {
	if size, ok := o.sizeCache.Get(dir); ok {
		return size, nil
	}

	var total uint64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil // Skip entries we can't access
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += uint64(info.Size())
		return nil
	})
	if err != nil {
		return 0, err
	}

	o.sizeCache.Add(dir, total)
	return total, nil
}

// InvalidateSizeCache clears the recursive-size cache. Call between
// indexing cycles if the same OS instance is reused.
func (o *OS) InvalidateSizeCache() {
	o.sizeCache.Purge()
}
