// File: sink/sink_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sink

import (
	"fmt"
	"testing"
)

// TestSlice_AppendAndReserve tests ordered accumulation and pre-sizing.
func TestSlice_AppendAndReserve(t *testing.T) {
	var s Slice[int]
	s.Reserve(4)

	if cap(s.Items) < 4 {
		t.Errorf("expected capacity >= 4 after Reserve, got %d", cap(s.Items))
	}

	for i := 0; i < 4; i++ {
		if err := s.Append(i); err != nil {
			t.Fatalf("Append(%d) failed: %v", i, err)
		}
	}

	for i, v := range s.Items {
		if v != i {
			t.Errorf("Items[%d] = %d, want %d", i, v, i)
		}
	}

	s.Reset()
	if len(s.Items) != 0 {
		t.Errorf("expected empty sink after Reset, got len %d", len(s.Items))
	}
}

// TestSlice_ReserveKeepsExisting tests that Reserve preserves content.
func TestSlice_ReserveKeepsExisting(t *testing.T) {
	var s Slice[string]
	s.Append("a")
	s.Append("b")
	s.Reserve(16)

	if len(s.Items) != 2 || s.Items[0] != "a" || s.Items[1] != "b" {
		t.Errorf("Reserve lost existing items: %v", s.Items)
	}
}

// TestQueue_FIFO tests queue sink ordering.
func TestQueue_FIFO(t *testing.T) {
	q := NewQueue[int]()

	for i := 0; i < 3; i++ {
		if err := q.Append(i); err != nil {
			t.Fatalf("Append(%d) failed: %v", i, err)
		}
	}

	if q.Len() != 3 {
		t.Errorf("expected length 3, got %d", q.Len())
	}

	if v, ok := q.Peek(); !ok || v != 0 {
		t.Errorf("Peek = (%d, %v), want (0, true)", v, ok)
	}

	for i := 0; i < 3; i++ {
		v, ok := q.Next()
		if !ok || v != i {
			t.Errorf("Next = (%d, %v), want (%d, true)", v, ok, i)
		}
	}

	if _, ok := q.Next(); ok {
		t.Errorf("expected Next on empty queue to report false")
	}
}

// TestFunc_PropagatesError tests the callback adapter.
func TestFunc_PropagatesError(t *testing.T) {
	boom := fmt.Errorf("sink refused")
	f := Func[int](func(v int) error {
		if v == 7 {
			return boom
		}
		return nil
	})

	if err := f.Append(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := f.Append(7); err != boom {
		t.Errorf("expected callback error, got %v", err)
	}
}
