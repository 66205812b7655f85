package gamegen

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/pgsolve/internal/game"
)

// Load reads the package's tiny whitespace-delimited text format from r:
//
//	<n>
//	<vertex> <owner 0|1> <priority> <out1> <out2> ...
//	...
//
// One line per vertex, in any order, vertex indices in [0, n). This is
// not oink's .pg/pgsolver format — it exists only to give the demo CLI's
// --file flag something to read without a real game file on hand.
func Load(r io.Reader) (*game.Game, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !scanner.Scan() {
		return nil, fmt.Errorf("gamegen: empty input")
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("gamegen: parse vertex count: %w", err)
	}

	g := game.New(n)
	seen := make([]bool, n)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("gamegen: malformed line %q", line)
		}

		v, err := strconv.Atoi(fields[0])
		if err != nil || v < 0 || v >= n {
			return nil, fmt.Errorf("gamegen: bad vertex index %q", fields[0])
		}
		owner, err := strconv.Atoi(fields[1])
		if err != nil || (owner != 0 && owner != 1) {
			return nil, fmt.Errorf("gamegen: bad owner %q for vertex %d", fields[1], v)
		}
		priority, err := strconv.Atoi(fields[2])
		if err != nil || priority < 0 {
			return nil, fmt.Errorf("gamegen: bad priority %q for vertex %d", fields[2], v)
		}

		g.Owner[v] = game.Player(owner)
		g.Priority[v] = priority
		for _, f := range fields[3:] {
			w, err := strconv.Atoi(f)
			if err != nil || w < 0 || w >= n {
				return nil, fmt.Errorf("gamegen: bad successor %q for vertex %d", f, v)
			}
			g.AddEdge(v, w)
		}
		seen[v] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gamegen: read: %w", err)
	}

	for v, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("gamegen: vertex %d never defined", v)
		}
		if len(g.Out[v]) == 0 {
			return nil, fmt.Errorf("gamegen: vertex %d has no successors", v)
		}
	}

	return g, nil
}
