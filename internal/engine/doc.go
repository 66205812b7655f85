// Package engine implements the precision-parameterised Zielonka
// recursion: the attractor kernel, the monotone category allocator, the
// memoisation store, and the Engine type that ties them together to
// solve one subgame at a time. The driver package owns everything
// outside a single Run call — disabling, flushing, checkpointing — and
// never reaches into engine's scratch arrays directly.
package engine
