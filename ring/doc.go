// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-threaded fixed-capacity FIFO ring buffer. Shares its
// wraparound arithmetic and tiered failure guarantees with the
// concurrent variant in package shared, minus the synchronization:
// no operation here is safe for concurrent use.
package ring
