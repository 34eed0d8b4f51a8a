package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Aman-CERP/fsindex/internal/ui"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index [path]",
		Short: "Walk a subtree and report index statistics",
		Long: `Walk the subtree rooted at path (default: current directory), build
the per-directory trees and the directory hash table, and print a
summary: directory and file counts, bucket count, and load factor.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			snap, err := buildSnapshot(root)
			if err != nil {
				return err
			}

			ui.NewRenderer(cmd.OutOrStdout()).Summary(snap)
			return nil
		},
	}
}
