// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for buffer instances.
// Purely observational: nothing here affects buffer semantics.
//
// Provides concurrent-safe primitives including:
//   - Typed operation counters with snapshot reads
//   - State export and probe registration for diagnostics
package control
