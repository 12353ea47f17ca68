// Package cli implements the cellart command-line interface.
//
// Two subcommands mirror the two diagram modes of the library: `gradient`
// renders cells shaded along a two color gradient, `palette` gives every
// cell an independently random color. Both accept flags or a TOML config
// file (flags win), and support --verbose for debug-level logging via
// charmbracelet/log.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the cellart CLI and returns an error if any command fails
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cellart",
		Short:        "cellart renders Voronoi diagram images",
		Long:         `cellart scatters random seed points over a canvas & colors every pixel by its nearest seed, producing Voronoi cell art as PNG images.`,
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

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGradientCmd())
	root.AddCommand(newPaletteCmd())

	return root.ExecuteContext(context.Background())
}
