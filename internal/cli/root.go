// Package cli assembles the demo binary's cobra command tree: a root
// command carrying shared output/verbosity flags, and solve/bench
// subcommands that generate or load a small game and run the driver
// end to end. Grounded on the teacher's internal/cli package (root
// command with persistent flags threaded through a shared options
// struct, ExitError/WrapExitError for exit-code propagation,
// OutputFormatter for --format text|json).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every subcommand.
type RootOptions struct {
	Verbose bool
	Format  string
}

var validFormats = []string{"text", "json"}

// NewRootCommand builds the pgsolve root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pgsolve",
		Short: "pgsolve - a precision-parameterised Zielonka parity-game solver",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
