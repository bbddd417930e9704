// Package api
// Author: momentics@gmail.com
//
// Output-container contracts for bulk reads.

package api

// Sink receives elements from bulk reads, oldest first. Any sequence
// container that can append one element at a time qualifies.
type Sink[T any] interface {
	// Append adds one element. A non-nil error aborts the read; the
	// residual buffer state depends on the operation's tier.
	Append(v T) error
}

// Reserver is an optional Sink capability. When the sink implements it,
// bulk reads call Reserve with the exact element count before the first
// Append. Purely a performance hint, never a correctness dependency.
type Reserver interface {
	Reserve(n int)
}
