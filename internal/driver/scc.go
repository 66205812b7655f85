package driver

// genericTarjanSCC computes the strongly connected components of the
// graph induced by vertices and adj, using an explicit-stack
// reformulation of Tarjan's algorithm (grounded on the teacher's
// recursive compiler.tarjanSCC, generalised here to avoid exhausting the
// native call stack on large games). Components are returned in the
// order Tarjan completes them, which is reverse topological order: the
// first component returned has no edge leaving it to any other
// component, i.e. it is a sink ("bottom") component of the condensation.
func genericTarjanSCC(vertices []int, adj func(int) []int) [][]int {
	index := 0
	indices := make(map[int]int, len(vertices))
	lowlink := make(map[int]int, len(vertices))
	onStack := make(map[int]bool, len(vertices))
	var stack []int
	var sccs [][]int

	type frame struct {
		v    int
		adj  []int
		next int
	}

	for _, root := range vertices {
		if _, seen := indices[root]; seen {
			continue
		}

		call := []frame{{v: root, adj: adj(root)}}
		indices[root] = index
		lowlink[root] = index
		index++
		stack = append(stack, root)
		onStack[root] = true

		for len(call) > 0 {
			top := &call[len(call)-1]

			if top.next < len(top.adj) {
				w := top.adj[top.next]
				top.next++
				if idx, seen := indices[w]; !seen {
					indices[w] = index
					lowlink[w] = index
					index++
					stack = append(stack, w)
					onStack[w] = true
					call = append(call, frame{v: w, adj: adj(w)})
				} else if onStack[w] {
					if idx < lowlink[top.v] {
						lowlink[top.v] = idx
					}
				}
				continue
			}

			v := top.v
			call = call[:len(call)-1]
			if len(call) > 0 {
				parent := &call[len(call)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}
			if lowlink[v] == indices[v] {
				var scc []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				sccs = append(sccs, scc)
			}
		}
	}

	return sccs
}

// bottomSCC returns a sink strongly connected component of the graph
// induced by active (edges restricted to active, ignoring disabled
// endpoints and the original game's globally-numbered edges to vertices
// outside active). Returns ok=false when the whole of active forms one
// component — restricting to it would change nothing, so the caller
// should skip the optional §4.F step 2 narrowing.
func (d *Driver) bottomSCC(active []int) (component []int, ok bool) {
	inActive := make(map[int]bool, len(active))
	for _, v := range active {
		inActive[v] = true
	}

	adj := func(v int) []int {
		out := d.g.Out[v]
		filtered := make([]int, 0, len(out))
		for _, w := range out {
			if inActive[w] {
				filtered = append(filtered, w)
			}
		}
		return filtered
	}

	sccs := genericTarjanSCC(active, adj)
	if len(sccs) == 0 {
		return nil, false
	}
	bottom := sccs[0]
	if len(bottom) == len(active) {
		return nil, false
	}
	return bottom, true
}
