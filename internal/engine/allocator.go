package engine

import (
	"sync/atomic"

	"github.com/roach88/pgsolve/internal/pgerr"
)

// CategoryAllocator hands out fresh category tags for the engine's
// vtype array. It is the process-wide monotone counter described in the
// spec: tags are never reused, so a recursive frame can always tell "my
// vertices" from "an ancestor frame's vertices" by tag identity alone,
// without ever clearing the vtype array between calls.
//
// Thread-safety mirrors the teacher's logical Clock: an atomic counter,
// even though the engine itself is single-writer per solve (§5 of the
// spec) — the atomic costs nothing and keeps the allocator safe to share
// across independent Engine instances solving different games
// concurrently under an external runtime.
type CategoryAllocator struct {
	next atomic.Int64
}

// NewCategoryAllocator returns an allocator starting at 0.
func NewCategoryAllocator() *CategoryAllocator {
	return &CategoryAllocator{}
}

// New returns a fresh category tag, never returned before by this
// allocator. Panics via a *pgerr.LogicError on the practically
// unreachable 64-bit wraparound, per the design notes' instruction that
// wraparound "should be checked."
func (a *CategoryAllocator) New() int {
	v := a.next.Add(1) - 1
	if v < 0 {
		panic(pgerr.New(pgerr.CodeCounterOverflow, "category allocator overflowed"))
	}
	return int(v)
}
