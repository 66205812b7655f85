package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/pgsolve/internal/driver"
	"github.com/roach88/pgsolve/internal/engine"
	"github.com/roach88/pgsolve/internal/solverconfig"
	"github.com/roach88/pgsolve/internal/store"
)

// SolveOptions holds the flags for the solve command.
type SolveOptions struct {
	*RootOptions
	GameOptions

	ConfigPath string

	ClassicalZielonka bool
	QuickPriority     bool
	Memoize           bool
	HashedMemo        bool
	BottomSCC         bool
	AutoReduce        bool
	InitialPrecision  int

	Database string
	Resume   bool
	RunID    string
}

// NewSolveCommand builds the solve subcommand.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "solve",
		Short:         "Solve a generated or loaded parity game",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "path to a game file (see internal/gamegen for the format); generates a random game if unset")
	cmd.Flags().IntVar(&opts.N, "n", 20, "number of vertices to generate")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&opts.Density, "density", 2, "expected out-degree per vertex")
	cmd.Flags().IntVar(&opts.MaxPriority, "max-priority", 6, "highest priority a generated vertex may receive")

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML solver config; CLI flags explicitly set override it")

	cmd.Flags().BoolVar(&opts.ClassicalZielonka, "classical-zielonka", false, "run classical Zielonka (mode 3) instead of the precision-reduced variant")
	cmd.Flags().BoolVar(&opts.QuickPriority, "quick-priority", false, "pin mprio to -1 at every recursive level")
	cmd.Flags().BoolVar(&opts.Memoize, "memoize", false, "enable the engine's memoisation store")
	cmd.Flags().BoolVar(&opts.HashedMemo, "hashed-memo", false, "use the SHA-256 bucket-keyed memo backend instead of the plain map backend")
	cmd.Flags().BoolVar(&opts.BottomSCC, "bottom-scc", false, "restrict each round to a bottom strongly connected component when one exists")
	cmd.Flags().BoolVar(&opts.AutoReduce, "auto-reduce", false, "reserved; accepted for config-file parity but has no effect on solving")
	cmd.Flags().IntVar(&opts.InitialPrecision, "initial-precision", 0, "override the default ceil(log2 n) initial precision budget (0 = default)")

	cmd.Flags().StringVar(&opts.Database, "database", "", "checkpoint SQLite database path; empty disables checkpointing")
	cmd.Flags().BoolVar(&opts.Resume, "resume", false, "resume a prior run from --database using --run-id")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "run ID to resume from; required with --resume")

	return cmd
}

func mergeConfig(cmd *cobra.Command, opts *SolveOptions) (*solverconfig.Config, error) {
	cfg := &solverconfig.Config{}
	if opts.ConfigPath != "" {
		loaded, err := solverconfig.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("classical-zielonka") {
		cfg.ClassicalZielonka = opts.ClassicalZielonka
	}
	if flags.Changed("quick-priority") {
		cfg.QuickPriority = opts.QuickPriority
	}
	if flags.Changed("memoize") {
		cfg.Memoize = opts.Memoize
	}
	if flags.Changed("hashed-memo") {
		cfg.HashedMemo = opts.HashedMemo
	}
	if flags.Changed("bottom-scc") {
		cfg.BottomSCC = opts.BottomSCC
	}
	if flags.Changed("auto-reduce") {
		cfg.AutoReduce = opts.AutoReduce
	}
	if flags.Changed("initial-precision") {
		cfg.InitialPrecision = opts.InitialPrecision
	}
	if flags.Changed("database") {
		cfg.Database = opts.Database
	}
	if flags.Changed("resume") {
		cfg.Resume = opts.Resume
	}
	if flags.Changed("run-id") {
		cfg.RunID = opts.RunID
	}

	if err := cfg.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, opts *SolveOptions) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := mergeConfig(cmd, opts)
	if err != nil {
		return err
	}
	if cfg.AutoReduce {
		log.Info("auto_reduce is reserved and has no effect: self-loop and trivial-cycle pre-reductions always run unconditionally")
	}

	g, err := loadOrGenerateGame(opts.GameOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to obtain game", err)
	}

	driverOpts := []driver.Option{driver.WithLogger(log)}

	flags := driver.Flags{
		ClassicalZielonka: cfg.ClassicalZielonka,
		QuickPriority:     cfg.QuickPriority,
		BottomSCC:         cfg.BottomSCC,
		InitialPrecision:  cfg.InitialPrecision,
		AutoReduce:        cfg.AutoReduce,
	}
	driverOpts = append(driverOpts, driver.WithFlags(flags))

	cat := engine.NewCategoryAllocator()
	engOpts := []engine.Option{engine.WithLogger(log)}
	if cfg.Memoize {
		var memo engine.MemoStore
		if cfg.HashedMemo {
			memo = engine.NewHashedMemoStore()
		} else {
			memo = engine.NewMemoStore()
		}
		engOpts = append(engOpts, engine.WithMemoStore(memo))
	}
	eng := engine.NewEngine(g, cat, engOpts...)
	driverOpts = append(driverOpts, driver.WithEngine(eng, cat))

	ctx := context.Background()

	var st *store.Store
	if cfg.Database != "" {
		st, err = store.Open(cfg.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open checkpoint database", err)
		}
		defer st.Close()

		if cfg.Resume {
			if _, err := driver.ResumeFromCheckpoint(ctx, st, cfg.RunID, g); err != nil {
				return WrapExitError(ExitCommandError, "failed to resume checkpoint", err)
			}
			driverOpts = append(driverOpts, driver.WithRunIDGenerator(driver.NewFixedGenerator(cfg.RunID)))
		}
		driverOpts = append(driverOpts, driver.WithCheckpointStore(ctx, st))
	}

	d := driver.New(g, driverOpts...)

	log.Info("solving", "run_id", d.RunID(), "n", g.N)
	if err := d.SolveLoop(ctx); err != nil {
		return WrapExitError(ExitFailure, "solve failed", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(summarize(d))
}

type vertexResult struct {
	Vertex   int    `json:"vertex"`
	Winner   string `json:"winner"`
	Strategy int    `json:"strategy"`
}

type solveResult struct {
	RunID    string         `json:"run_id"`
	Vertices []vertexResult `json:"vertices"`
}

func summarize(d *driver.Driver) solveResult {
	g := d.Game()
	res := solveResult{RunID: d.RunID(), Vertices: make([]vertexResult, g.N)}
	for v := 0; v < g.N; v++ {
		res.Vertices[v] = vertexResult{Vertex: v, Winner: g.Winner[v].String(), Strategy: g.Strategy[v]}
	}
	return res
}
