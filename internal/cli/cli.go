// Package cli implements the regroup command-line interface.
//
// The CLI wraps the solver core with the collaborator concerns the core
// deliberately leaves out: reading instances from JSON or TOML files,
// rendering result sequences for a human reader, caching solved results on
// disk and wall-clock cutoffs via --timeout. All commands support --verbose
// (-v) for debug-level logging; loggers travel through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
)

// SetVersion sets the version information displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the regroup CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "regroup",
		Short:        "regroup finds the longest sequence of unique group assignments",
		Long:         `regroup is an exact solver for repeated unique group assignment: it repeatedly partitions a set of entities into groups of a minimum size so that no two entities are ever grouped together twice, maximizing the number of rounds.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("regroup %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBoundCmd())

	return root.ExecuteContext(context.Background())
}
