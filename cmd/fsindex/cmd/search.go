package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/fsindex/internal/ui"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	root   string
	dir    bool // search directories (hash table) instead of files
	byPath bool // treat the argument as an exact path
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search the indexed subtree",
		Long: `Build a fresh index of the subtree and search it.

By default the argument is a base name and every matching file is
returned. --dir searches directories in the hash table instead, and
--path switches to an exact-path lookup.

Examples:
  fsindex search main.go
  fsindex search src --dir
  fsindex search /home/me/project/main.go --path
  fsindex search notes.txt --root ~/documents`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := buildSnapshot(opts.root)
			if err != nil {
				return err
			}

			r := ui.NewRenderer(cmd.OutOrStdout())

			if opts.byPath {
				e, ok := snap.LookupPath(args[0])
				if !ok && opts.dir {
					e, ok = snap.LookupDirPath(args[0])
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "not found")
					return nil
				}
				r.Entry(e)
				return nil
			}

			matches := snap.LookupName(args[0])
			if opts.dir {
				matches = snap.LookupDirName(args[0])
			}
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}
			for _, e := range matches {
				r.Entry(e)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", ".", "Subtree to index before searching")
	cmd.Flags().BoolVar(&opts.dir, "dir", false, "Search directories instead of files")
	cmd.Flags().BoolVar(&opts.byPath, "path", false, "Match the argument as an exact path")

	return cmd
}
