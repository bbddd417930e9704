// File: sink/sink.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ready-made output containers for bulk reads. Any api.Sink works; the
// buffer only ever appends one element at a time, oldest first, and
// calls Reserve when the sink supports it.

package sink

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/api"
)

// Slice accumulates elements in arrival order. Implements the Reserve
// capability, so bulk reads pre-size it.
type Slice[T any] struct {
	Items []T
}

// Append adds one element.
func (s *Slice[T]) Append(v T) error {
	s.Items = append(s.Items, v)
	return nil
}

// Reserve grows spare capacity to hold n more elements.
func (s *Slice[T]) Reserve(n int) {
	if free := cap(s.Items) - len(s.Items); free < n {
		grown := make([]T, len(s.Items), len(s.Items)+n)
		copy(grown, s.Items)
		s.Items = grown
	}
}

// Reset clears accumulated elements retaining capacity.
func (s *Slice[T]) Reset() {
	clear(s.Items)
	s.Items = s.Items[:0]
}

// Queue adapts eapache's dynamically growing queue as a read target,
// for callers that keep draining while the buffer refills.
type Queue[T any] struct {
	q *queue.Queue
}

// NewQueue creates an empty queue sink.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{q: queue.New()}
}

// Append adds one element at the back.
func (s *Queue[T]) Append(v T) error {
	s.q.Add(v)
	return nil
}

// Len returns the number of queued elements.
func (s *Queue[T]) Len() int {
	return s.q.Length()
}

// Peek returns the oldest element without removing it.
func (s *Queue[T]) Peek() (T, bool) {
	if s.q.Length() == 0 {
		var zero T
		return zero, false
	}
	return s.q.Peek().(T), true
}

// Next removes and returns the oldest element.
func (s *Queue[T]) Next() (T, bool) {
	if s.q.Length() == 0 {
		var zero T
		return zero, false
	}
	return s.q.Remove().(T), true
}

// Func adapts a callback as a sink.
type Func[T any] func(T) error

// Append invokes the callback.
func (f Func[T]) Append(v T) error {
	return f(v)
}

// Ensure compile-time interface compliance.
var (
	_ api.Sink[any] = (*Slice[any])(nil)
	_ api.Reserver  = (*Slice[any])(nil)
	_ api.Sink[any] = (*Queue[any])(nil)
	_ api.Sink[any] = (Func[any])(nil)
)
