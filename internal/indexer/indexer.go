// Package indexer builds the in-memory index of a filesystem subtree: one
// ordered tree per directory visited plus one flat hash table of all
// directories. The walker is the only component that touches the
// filesystem; the artifacts it returns are read-only afterwards.
package indexer

import (
	"log/slog"
	"path/filepath"

	"github.com/Aman-CERP/fsindex/internal/avltree"
	"github.com/Aman-CERP/fsindex/internal/entry"
	errs "github.com/Aman-CERP/fsindex/internal/errors"
	"github.com/Aman-CERP/fsindex/internal/fsys"
	"github.com/Aman-CERP/fsindex/internal/hashindex"
)

// Options configures a walk.
type Options struct {
	// Buckets is the hash table bucket count (0 = hashindex.DefaultBuckets).
	Buckets int

	// Exclude lists entry names to skip, matched with filepath.Match
	// against the base name (e.g. ".git", "*.tmp").
	Exclude []string
}

// DirIndex pairs one visited directory with the ordered index of its
// immediate file children.
type DirIndex struct {
	// Path is the absolute path of the directory the tree was built from.
	Path string
	// Tree holds the directory's immediate file children, keyed by path.
	Tree *avltree.Tree
}

// Walker builds snapshots. It is single-threaded and synchronous; every
// Walk call rebuilds the whole index from scratch.
type Walker struct {
	fs   fsys.FS
	opts Options
}

// New creates a walker over the given filesystem collaborator.
func New(fs fsys.FS, opts Options) *Walker {
	return &Walker{fs: fs, opts: opts}
}

// Walk indexes the subtree rooted at root. The returned snapshot is best
// effort: unreadable entries are logged and skipped, never aborting the
// walk. The only error is an unusable root.
func (w *Walker) Walk(root string) (*Snapshot, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errs.InvalidPathError(root, err)
	}
	info, err := w.fs.Stat(absRoot)
	if err != nil {
		return nil, errs.InvalidPathError(absRoot, err)
	}
	if !info.Dir {
		return nil, errs.InvalidPathError(absRoot, nil).
			WithDetail("reason", "not a directory")
	}

	snap := &Snapshot{
		Root:  absRoot,
		Table: hashindex.New(w.opts.Buckets),
	}
	w.walkDir(absRoot, snap)
	return snap, nil
}

// walkDir indexes one directory: files go into a fresh ordered tree,
// subdirectories into the hash table. The directory's index is appended
// before recursing, so snap.Dirs reflects pre-order visitation.
func (w *Walker) walkDir(dir string, snap *Snapshot) {
	names, err := w.fs.ListDir(dir)
	if err != nil {
		logSkip(errs.DirReadError(dir, err))
		return
	}

	tree := avltree.New()
	var subdirs []string

	for _, name := range names {
		if w.excluded(name) {
			continue
		}
		path := filepath.Join(dir, name)

		info, err := w.fs.Stat(path)
		if err != nil {
			logSkip(errs.MetadataError(path, err))
			continue
		}

		if !info.Dir {
			tree.Insert(entry.Entry{
				Name: name,
				Path: path,
				Size: info.Size,
				Kind: entry.KindFile,
			})
			continue
		}

		size, err := w.fs.RecursiveSize(path)
		if err != nil {
			// Skip the directory entirely: no hash insert, no recursion.
			logSkip(errs.RecursiveSizeError(path, err))
			continue
		}
		snap.Table.Insert(entry.Entry{
			Name: name,
			Path: path,
			Size: size,
			Kind: entry.KindDirectory,
		})
		subdirs = append(subdirs, path)
	}

	snap.Dirs = append(snap.Dirs, DirIndex{Path: dir, Tree: tree})

	for _, sub := range subdirs {
		w.walkDir(sub, snap)
	}
}

func (w *Walker) excluded(name string) bool {
	for _, pattern := range w.opts.Exclude {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

func logSkip(err *errs.IndexError) {
	slog.Warn("skipping unreadable entry",
		slog.String("code", err.Code),
		slog.String("error", err.Error()))
}
