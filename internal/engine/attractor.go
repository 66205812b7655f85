package engine

import "github.com/roach88/pgsolve/internal/game"

// attract expands the cat_target-tagged vertices of vs to their
// alpha-attractor within vs: the smallest superset closed under
// alpha-forced reachability, using a breadth-first fixed-point computed
// over degrees-remaining counters (degs), exactly as described in the
// spec's §4.B.
//
// Precondition: for every v in vs, vtype[v] is catBase or catTarget; for
// every v outside vs, vtype[v] carries some other tag.
// Postcondition: the catTarget set is closed under alpha-forced
// reachability inside vs; strategy[v] carries a witness move for every
// alpha-owned vertex newly attracted. degs is restored to -1 for every
// v in vs on every exit path (attractor's one scoped resource, per the
// spec's resource-ownership notes).
func (e *Engine) attract(vs []int, alpha game.Player, catBase, catTarget int) {
	g := e.g
	queue := e.aqueue[:0]

	for _, v := range vs {
		switch {
		case e.vtype[v] == catTarget:
			queue = append(queue, v)
		case g.Owner[v] == alpha:
			e.degs[v] = 1
		default:
			d := 0
			for _, w := range g.Out[v] {
				if e.vtype[w] == catBase || e.vtype[w] == catTarget {
					d++
				}
			}
			e.degs[v] = d
		}
	}

	// Invariant: degs[v] counts the out-edges of v still unproven to reach
	// catTarget; v joins catTarget (and is enqueued) the moment it hits 0.
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		for _, u := range g.In[v] {
			if e.degs[u] <= 0 {
				continue // u is not a live candidate in vs (or already proven)
			}
			e.degs[u]--
			if e.degs[u] == 0 {
				e.vtype[u] = catTarget
				if g.Owner[u] == alpha {
					e.strategy[u] = v
				} else {
					e.strategy[u] = game.NoStrategy
				}
				queue = append(queue, u)
			}
		}
	}

	for _, v := range vs {
		e.degs[v] = -1
	}
	e.aqueue = queue[:0]
}
