package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/fsindex/internal/ui"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the built index structures",
	}
	cmd.AddCommand(newShowTreeCmd())
	cmd.AddCommand(newShowTableCmd())
	return cmd
}

func newShowTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [path]",
		Short: "Display every per-directory ordered tree",
		Long: `Walk the subtree and render each directory's ordered index sideways
(rightmost entries first, indented by tree depth), in pre-order
directory visitation order.`,
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

			r := ui.NewRenderer(cmd.OutOrStdout())
			for i, d := range snap.Dirs {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				r.Tree(d)
			}
			return nil
		},
	}
}

func newShowTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table [path]",
		Short: "Display the directory hash table",
		Long: `Walk the subtree and render the directory hash table bucket by
bucket, followed by occupancy and load factor diagnostics.`,
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

			ui.NewRenderer(cmd.OutOrStdout()).Table(snap)
			return nil
		},
	}
}
