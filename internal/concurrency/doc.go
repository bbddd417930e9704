// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Synchronization primitives for the concurrent ring buffer: a
// spin-acquired single-writer / counted-reader gate. No goroutines are
// created here; the gate is a passive primitive driven entirely by its
// callers.
package concurrency
