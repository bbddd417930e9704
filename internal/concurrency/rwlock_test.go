// File: internal/concurrency/rwlock_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestRWSpinLock_WriterExclusion checks that two writers never overlap.
func TestRWSpinLock_WriterExclusion(t *testing.T) {
	var l RWSpinLock
	var inside atomic.Int32
	var overlaps atomic.Int32
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				l.Lock()
				if inside.Add(1) != 1 {
					overlaps.Add(1)
				}
				inside.Add(-1)
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	if n := overlaps.Load(); n != 0 {
		t.Errorf("observed %d overlapping writer sections", n)
	}
}

// TestRWSpinLock_ReadersExcludeWriter checks that a writer cannot enter
// while readers hold the gate, and vice versa.
func TestRWSpinLock_ReadersExcludeWriter(t *testing.T) {
	var l RWSpinLock
	var readers atomic.Int32
	var writerActive atomic.Bool
	var violations atomic.Int32
	var wg sync.WaitGroup

	stop := make(chan struct{})
	for r := 0; r < 3; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				l.RLock()
				readers.Add(1)
				if writerActive.Load() {
					violations.Add(1)
				}
				readers.Add(-1)
				l.RUnlock()
			}
		}()
	}

	for i := 0; i < 500; i++ {
		l.Lock()
		writerActive.Store(true)
		if readers.Load() != 0 {
			violations.Add(1)
		}
		writerActive.Store(false)
		l.Unlock()
	}
	close(stop)
	wg.Wait()

	if n := violations.Load(); n != 0 {
		t.Errorf("observed %d reader/writer overlaps", n)
	}
}

// TestRWSpinLock_ConcurrentReaders checks that readers do not serialize
// against each other.
func TestRWSpinLock_ConcurrentReaders(t *testing.T) {
	var l RWSpinLock
	var peak atomic.Int32
	var current atomic.Int32
	var wg sync.WaitGroup

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.RLock()
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			current.Add(-1)
			l.RUnlock()
		}()
	}
	wg.Wait()

	if peak.Load() < 2 {
		t.Errorf("expected at least 2 simultaneous readers, peak was %d", peak.Load())
	}
}
