// File: shared/shared.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer construction, queries, and single-element operations for the
// concurrent variant. Bulk operations live in bulk.go.
//
// Hot fields are padded so the cursors, the occupied count, and the
// gate do not share cache lines with each other or with the cold
// configuration fields.

package shared

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/internal/concurrency"
	"github.com/momentics/hioload-ring/internal/cursor"
	"github.com/momentics/hioload-ring/internal/element"
	"github.com/momentics/hioload-ring/pool"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]    = (*Buffer[any])(nil)
	_ api.Introspector = (*Buffer[any])(nil)
)

// Buffer is a fixed-capacity FIFO ring buffer safe for one writer and
// many concurrent readers. All mutators serialize against each other;
// Front runs concurrently with other Fronts but never with a mutator;
// Len and Remaining never block.
//
// Writer acquisition busy-waits. There is no reader/writer fairness
// guarantee: a continuous stream of either side can hold off the other.
type Buffer[T any] struct {
	geom  cursor.Ring
	slots []T

	name    string
	metrics *control.MetricsRegistry
	scratch *pool.SlabPool[T]

	_     cpu.CacheLinePad
	write int
	read  int

	_        cpu.CacheLinePad
	occupied atomic.Int64

	_    cpu.CacheLinePad
	gate concurrency.RWSpinLock
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
			"shared: capacity must be positive").
			WithCause(api.ErrInvalidArgument).
			WithContext("capacity", capacity)
	}
	b := &Buffer[T]{
		geom:    cursor.New(capacity),
		slots:   make([]T, capacity),
		name:    "shared",
		scratch: pool.NewSlabPool[T](capacity),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Len returns the occupied count without blocking. The value is a
// snapshot and may be stale by the time the caller acts on it.
func (b *Buffer[T]) Len() int {
	return int(b.occupied.Load())
}

// Remaining returns how many more elements fit, without blocking.
// Snapshot semantics as for Len.
func (b *Buffer[T]) Remaining() int {
	return b.geom.Cap() - int(b.occupied.Load())
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return b.geom.Cap()
}

// Push inserts v at the back. A full buffer drops the insert and
// reports false. Cannot fail. Holds writer access for the duration.
func (b *Buffer[T]) Push(v T) bool {
	b.gate.Lock()
	defer b.gate.Unlock()
	if b.occupied.Load() == int64(b.geom.Cap()) {
		b.count("dropped")
		return false
	}
	b.place(v)
	b.count("push")
	return true
}

// Emplace constructs an element in place under writer access. The
// constructor runs only when a slot is free and before any state
// mutation; its failure leaves the buffer unchanged. A full buffer
// reports (false, nil) without invoking the constructor.
func (b *Buffer[T]) Emplace(ctor func() (T, error)) (bool, error) {
	b.gate.Lock()
	defer b.gate.Unlock()
	if b.occupied.Load() == int64(b.geom.Cap()) {
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

// Pop destroys the front element under writer access; empty buffer is
// a no-op.
func (b *Buffer[T]) Pop() error {
	b.gate.Lock()
	defer b.gate.Unlock()
	if b.occupied.Load() == 0 {
		return nil
	}
	if err := b.destroyFront(); err != nil {
		return err
	}
	b.count("pop")
	return nil
}

// Front returns a copy of the front element under reader access.
// Concurrent Fronts proceed together; any mutator is excluded for the
// duration of the copy. Empty buffer fails out-of-range.
func (b *Buffer[T]) Front() (T, error) {
	b.gate.RLock()
	defer b.gate.RUnlock()
	var zero T
	if b.occupied.Load() == 0 {
		return zero, api.OutOfRange("shared: cannot access front of empty buffer", 1, 0)
	}
	return element.Clone(b.slots[b.read])
}

// Read removes and returns the front element under writer access.
// Strong tier: the element copy happens before any cursor or count
// changes.
func (b *Buffer[T]) Read() (T, error) {
	b.gate.Lock()
	defer b.gate.Unlock()
	var zero T
	if b.occupied.Load() == 0 {
		return zero, api.OutOfRange("shared: invalid read on empty buffer", 1, 0)
	}
	v, err := element.Clone(b.slots[b.read])
	if err != nil {
		return zero, err
	}
	b.vacateFront()
	b.count("read")
	return v, nil
}

// DumpState emits a diagnostic snapshot under reader access.
func (b *Buffer[T]) DumpState() map[string]any {
	b.gate.RLock()
	defer b.gate.RUnlock()
	occupied := int(b.occupied.Load())
	return map[string]any{
		"name":      b.name,
		"cap":       b.geom.Cap(),
		"len":       occupied,
		"remaining": b.geom.Cap() - occupied,
		"read":      b.read,
		"write":     b.write,
	}
}

// RegisterProbe wires DumpState into a debug probe registry under the
// buffer's name.
func (b *Buffer[T]) RegisterProbe(dp *control.DebugProbes) {
	dp.RegisterProbe(b.name, func() any { return b.DumpState() })
}

// place writes v at the write cursor and commits it. Caller holds the
// writer gate.
func (b *Buffer[T]) place(v T) {
	b.slots[b.write] = v
	b.write = b.geom.Advance(b.write, 1)
	b.occupied.Add(1)
}

// destroyFront runs the dispose hook, then vacates the slot. Caller
// holds the writer gate.
func (b *Buffer[T]) destroyFront() error {
	if err := element.Dispose(b.slots[b.read]); err != nil {
		return err
	}
	b.vacateFront()
	return nil
}

// vacateFront zeroes the front slot and advances past it. Caller holds
// the writer gate.
func (b *Buffer[T]) vacateFront() {
	var zero T
	b.slots[b.read] = zero
	b.read = b.geom.Advance(b.read, 1)
	b.occupied.Add(-1)
}

func (b *Buffer[T]) count(op string) {
	if b.metrics != nil {
		b.metrics.Inc(b.name + "." + op)
	}
}
