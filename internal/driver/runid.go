package driver

import (
	"sync"

	"github.com/google/uuid"
)

// RunIDGenerator produces the identifier a driver stamps onto every
// checkpoint row it writes for a single SolveLoop invocation.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run identifiers, so
// checkpoint rows from successive runs against the same database sort
// by creation time without an extra timestamp column.
type UUIDv7Generator struct{}

// Generate returns a freshly minted UUIDv7 string. Panics on the
// practically unreachable case of the underlying generator failing.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns a predetermined sequence of run IDs, for
// deterministic tests and golden trace comparisons.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator returns a generator that yields ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined id. Panics once exhausted.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all run ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
