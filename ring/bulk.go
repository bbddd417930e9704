// File: ring/bulk.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bulk reads in two tiers, erase, and clear.
//
// ReadN captures-and-advances in place: cheap, but a failure midway
// leaves the elements already delivered removed (basic tier).
// SafeReadN first materializes an independent copy of the span via a
// two-segment wraparound copy, delivers it, and only then advances the
// cursor in a single step (strong tier, one extra copy of the span).

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/element"
)

// ReadN removes the n oldest elements into out, oldest first.
//
// Basic tier: if the element copy or the sink append fails at element
// k, the first k elements are already removed and the cursor sits on
// the remainder; the buffer stays internally consistent.
func (b *Buffer[T]) ReadN(n int, out api.Sink[T]) error {
	if err := b.checkBulk(n, out, "ring: cannot read more than buffered elements"); err != nil {
		return err
	}
	reserve(out, n)
	for i := 0; i < n; i++ {
		v, err := element.Clone(b.slots[b.read])
		if err != nil {
			return err
		}
		b.vacateFront()
		if err := out.Append(v); err != nil {
			return err
		}
	}
	b.count("read_bulk")
	return nil
}

// SafeReadN removes the n oldest elements into out with the strong
// guarantee: any failure leaves the buffer untouched. Costs one extra
// copy of the requested span.
func (b *Buffer[T]) SafeReadN(n int, out api.Sink[T]) error {
	if err := b.checkBulk(n, out, "ring: cannot safe-read more than buffered elements"); err != nil {
		return err
	}
	tmp := make([]T, 0, n)
	tmp, err := b.snapshotInto(tmp, n)
	if err != nil {
		return err
	}
	reserve(out, n)
	for _, v := range tmp {
		if err := out.Append(v); err != nil {
			return err
		}
	}
	b.commitBulkRead(n)
	b.count("read_bulk")
	return nil
}

// ReadAll is ReadN over the whole occupied span.
func (b *Buffer[T]) ReadAll(out api.Sink[T]) error {
	return b.ReadN(b.occupied, out)
}

// SafeReadAll is SafeReadN over the whole occupied span.
func (b *Buffer[T]) SafeReadAll(out api.Sink[T]) error {
	return b.SafeReadN(b.occupied, out)
}

// ReadSlice is a convenience over ReadN collecting into a slice. On a
// mid-read failure it returns the elements delivered so far alongside
// the error, since those are already removed from the buffer.
func (b *Buffer[T]) ReadSlice(n int) ([]T, error) {
	res := make([]T, 0, max(n, 0))
	err := b.ReadN(n, sliceSink[T]{&res})
	return res, err
}

// SafeReadSlice is a convenience over SafeReadN collecting into a slice.
func (b *Buffer[T]) SafeReadSlice(n int) ([]T, error) {
	res := make([]T, 0, max(n, 0))
	if err := b.SafeReadN(n, sliceSink[T]{&res}); err != nil {
		return nil, err
	}
	return res, nil
}

// Erase destroys up to min(n, Len()) elements from the front without
// returning them, and reports how many were destroyed. Clamps
// silently; never fails unless an element disposer fails, in which
// case it stops at the failing element with the earlier ones already
// destroyed. Disposers that fail are documented to void guarantees.
func (b *Buffer[T]) Erase(n int) (int, error) {
	if n > b.occupied {
		n = b.occupied
	}
	removed := 0
	for removed < n {
		if err := b.destroyFront(); err != nil {
			return removed, err
		}
		removed++
	}
	if removed > 0 {
		b.count("erase")
	}
	return removed, nil
}

// Clear destroys every buffered element.
func (b *Buffer[T]) Clear() (int, error) {
	return b.Erase(b.occupied)
}

// checkBulk validates a bulk read request without mutating anything.
func (b *Buffer[T]) checkBulk(n int, out api.Sink[T], msg string) error {
	if n < 0 || out == nil {
		return api.NewError(api.ErrCodeInvalidArgument, "ring: bad bulk read request").
			WithCause(api.ErrInvalidArgument).
			WithContext("requested", n)
	}
	if n > b.occupied {
		return api.OutOfRange(msg, n, b.occupied)
	}
	return nil
}

// snapshotInto clones the n front elements into tmp using the
// two-segment wraparound split: a contiguous run up to the last slot,
// then a contiguous run from the first slot. On a clone failure the
// partially filled tmp comes back with the error.
func (b *Buffer[T]) snapshotInto(tmp []T, n int) ([]T, error) {
	head, tail := b.geom.Split(b.read, n)
	for _, seg := range [2]struct{ start, count int }{
		{head.Start, head.Count},
		{tail.Start, tail.Count},
	} {
		for i := 0; i < seg.count; i++ {
			v, err := element.Clone(b.slots[seg.start+i])
			if err != nil {
				return tmp, err
			}
			tmp = append(tmp, v)
		}
	}
	return tmp, nil
}

// commitBulkRead zeroes the vacated span and advances the read cursor
// by n in one step. Cannot fail; called only after delivery succeeded.
func (b *Buffer[T]) commitBulkRead(n int) {
	head, tail := b.geom.Split(b.read, n)
	var zero T
	for i := 0; i < head.Count; i++ {
		b.slots[head.Start+i] = zero
	}
	for i := 0; i < tail.Count; i++ {
		b.slots[tail.Start+i] = zero
	}
	b.read = b.geom.Advance(b.read, n)
	b.occupied -= n
}

// reserve forwards the element count when the sink advertises the
// capability. A hint only.
func reserve[T any](out api.Sink[T], n int) {
	if r, ok := out.(api.Reserver); ok {
		r.Reserve(n)
	}
}

// sliceSink adapts a caller-owned slice for the convenience methods
// without importing the sink package.
type sliceSink[T any] struct {
	items *[]T
}

func (s sliceSink[T]) Append(v T) error {
	*s.items = append(*s.items, v)
	return nil
}
