// Package api
// Author: momentics
//
// Mock/testing utilities for the core contracts.

package api

// MockSink is a test and mock-friendly implementation of Sink and
// Reserver. Every Append is recorded in Calls as a Result pairing the
// delivered value with the injected error, so tests can assert on the
// full delivery history including the failing call. Successful
// deliveries are additionally collected into Items. Nil funcs fall
// back to plain collection / a no-op.
type MockSink[T any] struct {
	AppendFunc  func(T) error
	ReserveFunc func(int)
	Items       []T
	Calls       []Result[T]
	Reserved    int
}

func (m *MockSink[T]) Append(v T) error {
	var err error
	if m.AppendFunc != nil {
		err = m.AppendFunc(v)
	}
	m.Calls = append(m.Calls, Result[T]{Value: v, Err: err})
	if err != nil {
		return err
	}
	m.Items = append(m.Items, v)
	return nil
}

func (m *MockSink[T]) Reserve(n int) {
	m.Reserved += n
	if m.ReserveFunc != nil {
		m.ReserveFunc(n)
	}
}

// Ensure compile-time interface compliance.
var (
	_ Sink[any] = (*MockSink[any])(nil)
	_ Reserver  = (*MockSink[any])(nil)
)
