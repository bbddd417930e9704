// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity FIFO ring buffer contract shared by the serial and
// concurrent implementations.

package api

// Ring is the full operation surface of a fixed-capacity FIFO buffer.
//
// Failure guarantees are tiered per operation. The tiers follow the
// classic exception-safety vocabulary mapped onto explicit errors:
//
//   - nothrow: the operation cannot fail (Push, Len, Remaining, Cap).
//   - basic:   on failure the buffer may have partially advanced but
//     remains internally consistent (ReadN).
//   - strong:  on failure the buffer is unchanged (Emplace, Front,
//     Read, SafeReadN).
//
// Failure sources are the element hooks (Cloner, Disposer), the
// caller-supplied constructor passed to Emplace, and the Sink used by
// bulk reads. A type implementing none of the hooks makes every clone
// and dispose step infallible, upgrading ReadN to the strong tier.
type Ring[T any] interface {
	// Len returns the occupied count. Never blocks.
	Len() int
	// Remaining returns capacity minus the occupied count. Never blocks.
	Remaining() int
	// Cap returns the fixed capacity.
	Cap() int

	// Push inserts v at the back. When the buffer is full the insert is
	// dropped and Push reports false. Cannot fail.
	Push(v T) bool
	// Emplace constructs an element in place. The constructor runs only
	// when a slot is free and before any state mutation; its failure
	// leaves the buffer untouched. A full buffer reports (false, nil)
	// without invoking the constructor.
	Emplace(ctor func() (T, error)) (bool, error)
	// Pop destroys the front element. Empty buffer is a no-op.
	Pop() error
	// Front returns a copy of the front element without removal.
	Front() (T, error)
	// Read removes and returns the front element.
	Read() (T, error)

	// ReadN removes the n oldest elements into out, oldest first.
	// Basic tier: a failure at element k leaves the first k removed.
	ReadN(n int, out Sink[T]) error
	// SafeReadN behaves like ReadN but materializes an independent copy
	// of the span and delivers it before touching any cursor or count.
	// Strong tier: any failure leaves the buffer unchanged.
	SafeReadN(n int, out Sink[T]) error
	// ReadAll is ReadN(Len(), out).
	ReadAll(out Sink[T]) error
	// SafeReadAll is SafeReadN(Len(), out).
	SafeReadAll(out Sink[T]) error

	// Erase destroys up to min(n, Len()) elements from the front and
	// returns the number destroyed. Clamps silently.
	Erase(n int) (int, error)
	// Clear is Erase(Len()).
	Clear() (int, error)
}

// Cloner is an optional element hook. Value-returning reads use Clone
// to produce the caller's copy; types that do not implement it are
// copied by plain assignment, which cannot fail.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Disposer is an optional element hook invoked on destruction paths
// (Pop, Erase, Clear). Disposers should not fail; a failing Dispose
// degrades the guarantees of those operations exactly as documented on
// each implementation.
type Disposer interface {
	Dispose() error
}
