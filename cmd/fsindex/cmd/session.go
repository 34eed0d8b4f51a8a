package cmd

import (
	"github.com/Aman-CERP/fsindex/internal/config"
	"github.com/Aman-CERP/fsindex/internal/fsys"
	"github.com/Aman-CERP/fsindex/internal/indexer"
)

// buildSnapshot runs one full indexing cycle over root and returns the
// session state the invoking command queries. Flag overrides win over
// config file values.
func buildSnapshot(root string) (*indexer.Snapshot, error) {
	cfg, err := config.Load(root, configPath)
	if err != nil {
		return nil, err
	}
	if buckets > 0 {
		cfg.Buckets = buckets
	}
	if len(exclude) > 0 {
		cfg.Walk.Exclude = append(cfg.Walk.Exclude, exclude...)
	}

	fs, err := fsys.NewOS(fsys.OSOptions{FollowSymlinks: cfg.Walk.FollowSymlinks})
	if err != nil {
		return nil, err
	}

	walker := indexer.New(fs, indexer.Options{
		Buckets: cfg.Buckets,
		Exclude: cfg.Walk.Exclude,
	})
	return walker.Walk(root)
}
