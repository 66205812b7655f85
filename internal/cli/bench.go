package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/pgsolve/internal/driver"
	"github.com/roach88/pgsolve/internal/engine"
)

// BenchOptions holds the flags for the bench command.
type BenchOptions struct {
	*RootOptions
	GameOptions
}

// NewBenchCommand builds the bench subcommand: it runs the same
// generated game under classical Zielonka and under the precision-
// reduced variant, and reports the engine iteration count for each —
// a demonstration of property 3 (agreement with classical Zielonka)
// and property 4 (precision monotonicity), not a certified benchmark.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "bench",
		Short:         "Compare iteration counts between classical and precision-reduced Zielonka",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "path to a game file; generates a random game if unset")
	cmd.Flags().IntVar(&opts.N, "n", 20, "number of vertices to generate")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&opts.Density, "density", 2, "expected out-degree per vertex")
	cmd.Flags().IntVar(&opts.MaxPriority, "max-priority", 6, "highest priority a generated vertex may receive")

	return cmd
}

type benchRow struct {
	Mode       string `json:"mode"`
	Iterations int    `json:"iterations"`
	Winners    []int  `json:"even_wins"`
}

func runBench(cmd *cobra.Command, opts *BenchOptions) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	g, err := loadOrGenerateGame(opts.GameOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to obtain game", err)
	}

	ctx := context.Background()
	modes := []struct {
		name      string
		classical bool
	}{
		{"precision-reduced", false},
		{"classical", true},
	}

	rows := make([]benchRow, 0, len(modes))
	for _, m := range modes {
		gameCopy := cloneGame(g)
		cat := engine.NewCategoryAllocator()
		eng := engine.NewEngine(gameCopy, cat, engine.WithLogger(log))
		d := driver.New(gameCopy,
			driver.WithLogger(log),
			driver.WithEngine(eng, cat),
			driver.WithFlags(driver.Flags{ClassicalZielonka: m.classical}),
		)
		if err := d.SolveLoop(ctx); err != nil {
			return WrapExitError(ExitFailure, "bench solve failed", err)
		}
		rows = append(rows, benchRow{
			Mode:       m.name,
			Iterations: eng.Iterations(),
			Winners:    evenWinners(gameCopy),
		})
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(rows)
}
