// Package shared
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Concurrent fixed-capacity FIFO ring buffer for one writer and many
// simultaneous readers. Every mutator holds the writer side of a
// spinning reader/writer gate for its full duration; Front holds the
// reader side, so concurrent Fronts proceed together while any
// mutation is excluded. Len and Remaining read an atomic count and
// never block. The buffer creates no goroutines of its own.
package shared
