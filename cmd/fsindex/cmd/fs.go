package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/fsindex/internal/indexer"
)

// The mutation commands are the presentation-layer collaborator the engine
// anticipates: the index only locates entries, and the command decides the
// filesystem operation. Each one runs a fresh indexing cycle first, so the
// target must actually be indexable to be acted upon.

// resolveTarget absolutizes the target path and builds a snapshot over the
// requested root (default: the target's parent directory).
func resolveTarget(root, target string) (*indexer.Snapshot, string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, "", err
	}
	if root == "" {
		root = filepath.Dir(abs)
	}
	snap, err := buildSnapshot(root)
	if err != nil {
		return nil, "", err
	}
	return snap, abs, nil
}

func newRmCmd() *cobra.Command {
	var root string
	var dir bool

	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete an indexed file or directory",
		Long: `Index the subtree, and delete the target only if the index locates it.
Files are looked up in the per-directory trees; with --dir the target
is looked up in the directory hash table and removed recursively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, abs, err := resolveTarget(root, args[0])
			if err != nil {
				return err
			}

			if dir {
				if _, ok := snap.LookupDirPath(abs); !ok {
					return fmt.Errorf("directory not indexed: %s", abs)
				}
				if err := os.RemoveAll(abs); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed directory %s\n", abs)
				return nil
			}

			if _, ok := snap.LookupPath(abs); !ok {
				return fmt.Errorf("file not indexed: %s", abs)
			}
			if err := os.Remove(abs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Subtree to index (default: target's parent)")
	cmd.Flags().BoolVar(&dir, "dir", false, "Delete a directory (recursive)")
	return cmd
}

func newTouchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <path>",
		Short: "Create an empty file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", args[0])
			return nil
		},
	}
}

func newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.Mkdir(args[0], 0o755); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", args[0])
			return nil
		},
	}
}

func newCatCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "cat <path>",
		Short: "Print an indexed file's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, abs, err := resolveTarget(root, args[0])
			if err != nil {
				return err
			}
			if _, ok := snap.LookupPath(abs); !ok {
				return fmt.Errorf("file not indexed: %s", abs)
			}
			data, err := os.ReadFile(abs)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Subtree to index (default: target's parent)")
	return cmd
}

func newWriteCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Overwrite an indexed file with stdin",
		Long: `Index the subtree, and if the target file is located, replace its
contents with whatever is read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, abs, err := resolveTarget(root, args[0])
			if err != nil {
				return err
			}
			if _, ok := snap.LookupPath(abs); !ok {
				return fmt.Errorf("file not indexed: %s", abs)
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := os.WriteFile(abs, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(data), abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Subtree to index (default: target's parent)")
	return cmd
}
