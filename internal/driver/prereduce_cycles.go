package driver

import (
	"sort"

	"github.com/roach88/pgsolve/internal/game"
	"github.com/roach88/pgsolve/internal/pgerr"
)

// SolveTrivialCycles is the §4.H winner-controlled-SCC pre-reduction.
// It walks the active vertices in descending priority order and, at
// each not-yet-disqualified winner-controlled vertex, runs a
// Tarjan-style DFS restricted to successors of the matching owner with
// priority no higher than the current one. A found SCC that contains a
// self-loop or more than one vertex, and whose highest priority has the
// matching parity, is a dominion: it is solved via a backward BFS from
// its highest-priority member, solving every SCC member it reaches with
// the vertex it was reached from as its witness. SCCs disqualified by
// parity are annotated (done[v] = -2 for any offending member) so a
// lower-priority re-scan skips them rather than rediscovering the same
// dead end.
//
// Grounded directly on oink.cpp's Oink::solveTrivialCycles, translated
// from that implementation's index-ordering trick (vertices renumbered
// so index order tracks priority order) to an explicit priority
// comparison, since this Game does not renumber vertices by priority.
func (d *Driver) SolveTrivialCycles() error {
	n := d.g.N

	const (
		unvisited = -1
		skip      = -2
	)

	done := make([]int, n)
	low := make([]int64, n)
	for v := 0; v < n; v++ {
		if d.disabled[v] {
			done[v] = skip
		} else {
			done[v] = unvisited
		}
	}

	order := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !d.disabled[v] {
			order = append(order, v)
		}
	}
	sortByPriorityDesc(order, d.g.Priority)

	var pre int64
	var res, scc, dfs []int

	for _, i := range order {
		if d.disabled[i] || done[i] == skip {
			continue
		}

		pr := d.g.Priority[i]
		pl := game.Parity(pr)

		if d.g.Owner[i] != pl {
			done[i] = skip
			continue
		}
		if done[i] == int(pr) {
			continue
		}

		bot := pre
		dfs = dfs[:0]
		dfs = append(dfs, i)

		for len(dfs) > 0 {
			idx := dfs[len(dfs)-1]

			if low[idx] <= bot {
				pre++
				low[idx] = pre
				res = append(res, idx)
			}

			min := low[idx]
			pushed := false
			for _, to := range d.g.Out[idx] {
				if d.disabled[to] {
					continue
				}
				if d.g.Priority[to] > pr || done[to] == skip || done[to] == int(pr) || d.g.Owner[to] != pl {
					continue
				}
				if low[to] <= bot {
					dfs = append(dfs, to)
					pushed = true
					break
				}
				if low[to] < min {
					min = low[to]
				}
			}
			if pushed {
				continue
			}

			if min < low[idx] {
				low[idx] = min
				dfs = dfs[:len(dfs)-1]
				continue
			}

			scc = scc[:0]
			maxPr, maxPrPlPriority, maxPrPlVertex := -1, -1, -1
			for {
				if len(res) == 0 {
					return pgerr.New(pgerr.CodeEmptyStackPop, "solveTrivialCycles: empty result stack")
				}
				m := res[len(res)-1]
				res = res[:len(res)-1]
				scc = append(scc, m)
				done[m] = int(pr)
				if low[m] != min {
					low[m] = min
				}
				dv := d.g.Priority[m]
				if dv > maxPr {
					maxPr = dv
				}
				if game.Parity(dv) == pl && dv > maxPrPlPriority {
					maxPrPlPriority = dv
					maxPrPlVertex = m
				}
				if m == idx {
					break
				}
			}
			dfs = dfs[:len(dfs)-1]

			if len(scc) == 1 && !hasEdgeTo(d.g.Out[idx], idx) {
				done[idx] = skip
				continue
			}

			if game.Parity(maxPr) != pl {
				for _, v := range scc {
					if d.g.Priority[v] > maxPrPlPriority {
						done[v] = skip
					}
				}
				continue
			}

			queue := []int{maxPrPlVertex}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, from := range d.g.In[cur] {
					if low[from] != min || d.disabled[from] {
						continue
					}
					if err := d.Solve(from, pl, cur); err != nil {
						return err
					}
					queue = append(queue, from)
				}
			}
			if err := d.Flush(); err != nil {
				return err
			}

			dfs = dfs[:0]
			res = res[:0]
			scc = scc[:0]
		}
	}

	return nil
}

func sortByPriorityDesc(vs []int, priority []int) {
	sort.Slice(vs, func(i, j int) bool { return priority[vs[i]] > priority[vs[j]] })
}
