// File: internal/concurrency/rwlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RWSpinLock serializes the buffer's mutators against each other and
// against snapshot readers, while letting readers run concurrently
// with each other. Acquisition busy-waits with scheduler yields
// instead of parking; critical sections are expected to be short.
//
// The whole lock is one packed state word: the high bit marks a writer,
// the low bits count readers. A writer acquires only when the word is
// zero, so readers genuinely exclude the writer (and the CAS provides
// the memory fencing a plain advisory counter would lack). No fairness
// between sides: a continuous stream of readers can hold off a writer
// and vice versa.

package concurrency

import (
	"runtime"
	"sync/atomic"
)

const writerBit int32 = 1 << 30

// RWSpinLock is a single-writer, many-reader spinning lock.
// The zero value is unlocked and ready for use.
type RWSpinLock struct {
	state atomic.Int32
}

// RLock acquires shared reader access, spinning while a writer holds
// the gate.
func (l *RWSpinLock) RLock() {
	for {
		s := l.state.Load()
		if s&writerBit == 0 && l.state.CompareAndSwap(s, s+1) {
			return
		}
		runtime.Gosched()
	}
}

// RUnlock releases shared reader access.
func (l *RWSpinLock) RUnlock() {
	l.state.Add(-1)
}

// Lock acquires exclusive writer access, spinning until every reader
// has drained and no other writer holds the gate.
func (l *RWSpinLock) Lock() {
	for !l.state.CompareAndSwap(0, writerBit) {
		runtime.Gosched()
	}
}

// Unlock releases exclusive writer access.
func (l *RWSpinLock) Unlock() {
	l.state.Store(0)
}
