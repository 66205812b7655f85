package driver

// Flags selects among the solver's optional behaviours, mirroring the
// additive, independently toggleable flags the source solver exposes
// (classical Zielonka vs. the precision-parameterised variant,
// quick-priority, memoisation, auto-reduction).
type Flags struct {
	// ClassicalZielonka runs the engine with mode 3 throughout instead of
	// the precision-reduced modes 0/1/2.
	ClassicalZielonka bool
	// QuickPriority pins mprio to -1 at every recursive level, so each
	// frame recomputes the true maximum priority of its own subgame.
	// Without it, the outermost call starts from the active set's
	// maximum priority and each recursion level lowers mprio by one.
	QuickPriority bool
	// BottomSCC restricts each solveLoop round to a bottom (sink)
	// strongly connected component of the remaining graph rather than
	// the whole active set, when one exists.
	BottomSCC bool
	// InitialPrecision overrides the default ceil(log2(n)) precision
	// budget assigned to every solveLoop round. Zero means "use the
	// default."
	InitialPrecision int
	// AutoReduce is surfaced for config-file parity with the source
	// solver's removeLoops/removeWCWC switches but is reserved: the
	// driver always runs SolveSelfloops and SolveTrivialCycles once,
	// regardless of this flag's value.
	AutoReduce bool
}
