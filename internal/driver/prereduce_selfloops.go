package driver

import "github.com/roach88/pgsolve/internal/game"

// SolveSelfloops is the §4.H self-loop pre-reduction: for each enabled v
// with a self-loop, either v wins it outright (owner's parity matches
// its own priority's parity), v's only move is the losing self-loop
// (a one-vertex losing dominion), or the self-loop is simply dead
// weight and is physically removed so later passes don't have to keep
// stepping around it.
func (d *Driver) SolveSelfloops() error {
	for v := 0; v < d.g.N; v++ {
		if d.disabled[v] {
			continue
		}
		if !hasEdgeTo(d.g.Out[v], v) {
			continue
		}

		if d.g.Owner[v] == game.Parity(d.g.Priority[v]) {
			if err := d.Solve(v, d.g.Owner[v], v); err != nil {
				return err
			}
		} else if len(d.g.Out[v]) == 1 {
			if err := d.Solve(v, d.g.Owner[v].Other(), game.NoStrategy); err != nil {
				return err
			}
		} else {
			d.g.RemoveEdge(v, v)
			d.outcount[v]--
		}
	}
	return d.Flush()
}

func hasEdgeTo(out []int, target int) bool {
	for _, w := range out {
		if w == target {
			return true
		}
	}
	return false
}
