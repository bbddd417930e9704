// Package api
// Author: momentics
//
// Live debug and introspection support for buffer instances.

package api

// Introspector exposes a diagnostic snapshot of internal state.
// Snapshots are advisory: under concurrent use the reported values may
// be stale by the time the caller inspects them.
type Introspector interface {
	// DumpState emits a snapshot of buffer state for diagnostics.
	DumpState() map[string]any
}
