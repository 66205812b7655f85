package driver

import "github.com/roach88/pgsolve/internal/game"

// Observer receives a callback for every decision the driver commits and
// for the start/end of every solveLoop round. A Driver with no observers
// registered behaves identically, just silently — observers exist for
// the golden trace harness and for checkpoint persistence, neither of
// which the driver's own control flow depends on.
type Observer interface {
	OnSolve(v int, winner game.Player, strategy int)
	OnRoundStart(round int, active []int)
	OnRoundEnd(round int)
}

func (d *Driver) notifySolve(v int, w game.Player, s int) {
	for _, o := range d.observers {
		o.OnSolve(v, w, s)
	}
}

func (d *Driver) notifyRoundStart(round int, active []int) {
	for _, o := range d.observers {
		o.OnRoundStart(round, active)
	}
}

func (d *Driver) notifyRoundEnd(round int) {
	for _, o := range d.observers {
		o.OnRoundEnd(round)
	}
}
