// File: internal/cursor/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wraparound index arithmetic for fixed-capacity ring storage. Every
// cursor movement in the library, single-step or bulk, read side or
// write side, goes through Advance; Split feeds the two-segment
// snapshot copy.

package cursor

// Ring describes a fixed run of capacity slots. The first and last
// sentinels never change after construction; all arithmetic reflects
// around them.
type Ring struct {
	first int
	last  int
	n     int
}

// New builds the descriptor for a storage of capacity slots.
// capacity must be positive; callers validate before construction.
func New(capacity int) Ring {
	return Ring{first: 0, last: capacity - 1, n: capacity}
}

// Cap returns the fixed capacity.
func (r Ring) Cap() int {
	return r.n
}

// Advance moves pos forward n steps with modular wraparound. n may
// exceed capacity and is reduced first. Advancing by 0 or by exactly
// capacity returns pos.
func (r Ring) Advance(pos, n int) int {
	if n > r.n {
		n = n % r.n
	}
	if pos+n > r.last {
		return r.first + (n - 1 - (r.last - pos))
	}
	return pos + n
}

// Span is a contiguous run of slots.
type Span struct {
	Start int
	Count int
}

// Split cuts the n slots beginning at pos into at most two contiguous
// segments. When the run does not cross the last slot the second
// segment is empty; otherwise the first runs from pos through the last
// slot and the second restarts at the first slot.
func (r Ring) Split(pos, n int) (Span, Span) {
	if n <= 0 {
		return Span{}, Span{}
	}
	if pos+n-1 <= r.last {
		return Span{Start: pos, Count: n}, Span{}
	}
	head := r.last - pos + 1
	return Span{Start: pos, Count: head}, Span{Start: r.first, Count: n - head}
}
