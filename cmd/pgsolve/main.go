// Command pgsolve is a thin demo binary exercising the solver core from
// a terminal: it generates or loads a small parity game, runs it through
// the driver, and prints the resulting winners and strategies.
package main

import (
	"os"

	"github.com/roach88/pgsolve/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
