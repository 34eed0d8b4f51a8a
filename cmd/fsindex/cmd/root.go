// Package cmd provides the CLI commands for fsindex.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Aman-CERP/fsindex/internal/logging"
	"github.com/Aman-CERP/fsindex/pkg/version"
)

// Global flags shared by all subcommands.
var (
	configPath string
	buckets    int
	exclude    []string
	debugMode  bool

	loggingCleanup func()
)

// NewRootCmd creates the root command for the fsindex CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fsindex",
		Short: "Index a directory subtree into in-memory search structures",
		Long: `fsindex walks a directory subtree and builds two in-memory indexes:
a path-ordered balanced tree per directory, and a flat hash table of
all directories keyed by (name, path, size).

Every command runs one fresh indexing cycle; nothing is persisted
between runs, so results always reflect the tree as of the walk.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.SetVersionTemplate("fsindex version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: <root>/.fsindex.yaml)")
	cmd.PersistentFlags().IntVar(&buckets, "buckets", 0, "Hash table bucket count (overrides config)")
	cmd.PersistentFlags().StringArrayVar(&exclude, "exclude", nil, "Entry names to skip (repeatable, glob patterns allowed)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.fsindex/logs/")

	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentPostRun = teardownLogging

	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newRmCmd())
	cmd.AddCommand(newTouchCmd())
	cmd.AddCommand(newMkdirCmd())
	cmd.AddCommand(newCatCmd())
	cmd.AddCommand(newWriteCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg := logging.DefaultConfig()
	if debugMode {
		cfg = logging.DebugConfig()
	}
	cleanup, err := logging.SetupDefault(cfg)
	if err != nil {
		return err
	}
	loggingCleanup = cleanup
	return nil
}

func teardownLogging(cmd *cobra.Command, args []string) {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}
