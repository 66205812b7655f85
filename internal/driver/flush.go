package driver

import "github.com/roach88/pgsolve/internal/game"

// Flush drains the todo queue. For each popped solved vertex v with
// winner w, it walks v's *original* in-edges — ignoring disabled — so
// attraction crosses regions that a solver pass had locally excluded
// from its own subgame. A predecessor owned by w is attracted outright
// with witness v; otherwise its outcount is decremented, and once it
// hits zero the predecessor is forced to w with no strategy.
func (d *Driver) Flush() error {
	for {
		v, ok := d.popTodo()
		if !ok {
			return nil
		}
		if d.outcount[v] == -1 {
			continue // already processed
		}
		w := d.g.Winner[v]
		d.outcount[v] = -1

		for _, u := range d.g.In[v] {
			if d.g.Solved[u] {
				continue
			}
			if d.g.Owner[u] == w {
				if err := d.Solve(u, w, v); err != nil {
					return err
				}
				continue
			}
			d.outcount[u]--
			if d.outcount[u] == 0 {
				if err := d.Solve(u, w, game.NoStrategy); err != nil {
					return err
				}
			}
		}
	}
}
