// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer construction, queries, and single-element operations.
// Bulk operations live in bulk.go.

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/internal/cursor"
	"github.com/momentics/hioload-ring/internal/element"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]    = (*Buffer[any])(nil)
	_ api.Introspector = (*Buffer[any])(nil)
)

// Buffer is a fixed-capacity FIFO ring buffer. Not safe for concurrent
// use; package shared provides the synchronized variant.
//
// The occupied elements start at the read cursor and run forward with
// wraparound; the write cursor always equals the read cursor advanced
// by the occupied count.
type Buffer[T any] struct {
	geom  cursor.Ring
	slots []T

	write    int
	read     int
	occupied int

	name    string
	metrics *control.MetricsRegistry
}

// Option configures a Buffer at construction.
type Option[T any] func(*Buffer[T])

// WithMetrics attaches an operation counter registry. Counters are
// keyed by the buffer name.
func WithMetrics[T any](reg *control.MetricsRegistry) Option[T] {
	return func(b *Buffer[T]) { b.metrics = reg }
}

// WithName overrides the name used for metrics keys and debug probes.
func WithName[T any](name string) Option[T] {
	return func(b *Buffer[T]) { b.name = name }
}

// New creates a buffer holding up to capacity elements. Construction
// is atomic: the caller gets a fully initialized buffer or an error.
func New[T any](capacity int, opts ...Option[T]) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"ring: capacity must be positive").
			WithCause(api.ErrInvalidArgument).
			WithContext("capacity", capacity)
	}
	b := &Buffer[T]{
		geom:  cursor.New(capacity),
		slots: make([]T, capacity),
		name:  "ring",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Len returns the occupied count.
func (b *Buffer[T]) Len() int {
	return b.occupied
}

// Remaining returns how many more elements fit.
func (b *Buffer[T]) Remaining() int {
	return b.geom.Cap() - b.occupied
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return b.geom.Cap()
}

// Push inserts v at the back. A full buffer drops the insert and
// reports false. Cannot fail.
func (b *Buffer[T]) Push(v T) bool {
	if b.occupied == b.geom.Cap() {
		b.count("dropped")
		return false
	}
	b.place(v)
	b.count("push")
	return true
}

// Emplace constructs an element in place. The constructor runs only
// when a slot is free, and before any state mutation: its failure
// leaves the buffer exactly as it was. A full buffer reports
// (false, nil) without invoking the constructor.
func (b *Buffer[T]) Emplace(ctor func() (T, error)) (bool, error) {
	if b.occupied == b.geom.Cap() {
		b.count("dropped")
		return false, nil
	}
	v, err := ctor()
	if err != nil {
		return false, err
	}
	b.place(v)
	b.count("push")
	return true, nil
}

// Pop destroys the front element; empty buffer is a no-op. A failing
// disposer propagates before any cursor moves, so the element stays
// logically present unless the disposer itself left it half-destroyed.
func (b *Buffer[T]) Pop() error {
	if b.occupied == 0 {
		return nil
	}
	if err := b.destroyFront(); err != nil {
		return err
	}
	b.count("pop")
	return nil
}

// Front returns a copy of the front element without removal. Empty
// buffer fails out-of-range; the buffer is never mutated.
func (b *Buffer[T]) Front() (T, error) {
	var zero T
	if b.occupied == 0 {
		return zero, api.OutOfRange("ring: cannot access front of empty buffer", 1, 0)
	}
	return element.Clone(b.slots[b.read])
}

// Read removes and returns the front element. Empty buffer fails
// out-of-range. Strong tier: the element copy happens before any
// cursor or count changes.
func (b *Buffer[T]) Read() (T, error) {
	var zero T
	if b.occupied == 0 {
		return zero, api.OutOfRange("ring: invalid read on empty buffer", 1, 0)
	}
	v, err := element.Clone(b.slots[b.read])
	if err != nil {
		return zero, err
	}
	b.vacateFront()
	b.count("read")
	return v, nil
}

// DumpState emits a diagnostic snapshot.
func (b *Buffer[T]) DumpState() map[string]any {
	return map[string]any{
		"name":      b.name,
		"cap":       b.geom.Cap(),
		"len":       b.occupied,
		"remaining": b.geom.Cap() - b.occupied,
		"read":      b.read,
		"write":     b.write,
	}
}

// RegisterProbe wires DumpState into a debug probe registry under the
// buffer's name.
func (b *Buffer[T]) RegisterProbe(dp *control.DebugProbes) {
	dp.RegisterProbe(b.name, func() any { return b.DumpState() })
}

// place writes v at the write cursor and commits it.
func (b *Buffer[T]) place(v T) {
	b.slots[b.write] = v
	b.write = b.geom.Advance(b.write, 1)
	b.occupied++
}

// destroyFront runs the dispose hook, then vacates the slot.
func (b *Buffer[T]) destroyFront() error {
	if err := element.Dispose(b.slots[b.read]); err != nil {
		return err
	}
	b.vacateFront()
	return nil
}

// vacateFront zeroes the front slot and advances past it. Dead slots
// must never pin element memory.
func (b *Buffer[T]) vacateFront() {
	var zero T
	b.slots[b.read] = zero
	b.read = b.geom.Advance(b.read, 1)
	b.occupied--
}

func (b *Buffer[T]) count(op string) {
	if b.metrics != nil {
		b.metrics.Inc(b.name + "." + op)
	}
}
