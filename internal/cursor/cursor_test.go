// File: internal/cursor/cursor_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cursor

import "testing"

// TestAdvance_Table exercises the reflection formula across positions,
// step sizes, and capacities.
func TestAdvance_Table(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		pos      int
		n        int
		want     int
	}{
		{"zero step is identity", 4, 2, 0, 2},
		{"full wrap is identity", 4, 2, 4, 2},
		{"full wrap from zero", 4, 0, 4, 0},
		{"single step forward", 4, 0, 1, 1},
		{"single step at last slot wraps", 4, 3, 1, 0},
		{"bulk step without wrap", 8, 1, 5, 6},
		{"bulk step with wrap", 8, 6, 5, 3},
		{"step beyond capacity reduces", 4, 1, 9, 2},
		{"step of exactly twice capacity", 4, 3, 8, 3},
		{"capacity one always stays", 1, 0, 1, 0},
		{"capacity one zero step", 1, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.capacity)
			if got := r.Advance(tc.pos, tc.n); got != tc.want {
				t.Errorf("Advance(%d, %d) with capacity %d = %d, want %d",
					tc.pos, tc.n, tc.capacity, got, tc.want)
			}
		})
	}
}

// TestAdvance_MatchesModular verifies the reflection formula agrees
// with plain modular arithmetic for every (pos, n) pair at a few
// capacities.
func TestAdvance_MatchesModular(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 4, 7, 16} {
		r := New(capacity)
		for pos := 0; pos < capacity; pos++ {
			for n := 0; n <= 3*capacity; n++ {
				want := (pos + n) % capacity
				if got := r.Advance(pos, n); got != want {
					t.Fatalf("capacity %d: Advance(%d, %d) = %d, want %d",
						capacity, pos, n, got, want)
				}
			}
		}
	}
}

// TestSplit verifies the two-segment decomposition of a wrapped span.
func TestSplit(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		pos      int
		n        int
		wantHead Span
		wantTail Span
	}{
		{"empty span", 4, 2, 0, Span{}, Span{}},
		{"contiguous span", 8, 1, 4, Span{1, 4}, Span{}},
		{"span ending at last slot", 8, 4, 4, Span{4, 4}, Span{}},
		{"wrapped span", 8, 6, 5, Span{6, 2}, Span{0, 3}},
		{"wrap by one", 4, 3, 2, Span{3, 1}, Span{0, 1}},
		{"full buffer from middle", 4, 2, 4, Span{2, 2}, Span{0, 2}},
		{"full buffer from start", 4, 0, 4, Span{0, 4}, Span{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.capacity)
			head, tail := r.Split(tc.pos, tc.n)
			if head != tc.wantHead || tail != tc.wantTail {
				t.Errorf("Split(%d, %d) = %+v, %+v, want %+v, %+v",
					tc.pos, tc.n, head, tail, tc.wantHead, tc.wantTail)
			}
			if head.Count+tail.Count != tc.n {
				t.Errorf("Split(%d, %d) segment counts sum to %d, want %d",
					tc.pos, tc.n, head.Count+tail.Count, tc.n)
			}
		})
	}
}
