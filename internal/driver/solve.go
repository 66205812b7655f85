package driver

import "github.com/roach88/pgsolve/internal/game"

// Solve is the write sink the spec's §4.A describes: it commits the
// final decision for v (solved, winner, strategy per the owner-equals-
// winner rule), marks v disabled, pushes it onto the flush queue, and
// notifies observers. Fails with a *pgerr.LogicError if v is already
// solved or already disabled.
func (d *Driver) Solve(v int, winner game.Player, strategy int) error {
	if err := d.g.MarkSolved(v, winner, strategy); err != nil {
		return err
	}
	d.disable(v)
	d.pushTodo(v)
	d.notifySolve(v, winner, d.g.Strategy[v])
	return nil
}
