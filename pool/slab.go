// File: pool/slab.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity scratch slabs. The concurrent buffer borrows one slab
// per snapshot read instead of allocating a temporary slice each time.

package pool

// SlabPool hands out zero-length slices with a fixed capacity.
type SlabPool[T any] struct {
	inner *SyncPool[[]T]
}

// NewSlabPool creates a pool of slabs able to hold capacity elements.
func NewSlabPool[T any](capacity int) *SlabPool[T] {
	return &SlabPool[T]{
		inner: NewSyncPool(func() []T {
			return make([]T, 0, capacity)
		}),
	}
}

// Get borrows a slab, length zero, ready to append into.
func (sp *SlabPool[T]) Get() []T {
	return sp.inner.Get()[:0]
}

// Put returns a slab. Elements are cleared first so pooled memory
// never pins values the caller already owns.
func (sp *SlabPool[T]) Put(slab []T) {
	clear(slab)
	sp.inner.Put(slab[:0])
}
