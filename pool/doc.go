// Package pool
// Author: momentics <momentics@gmail.com>
//
// Generic object pooling for hioload-ring. Supplies the reusable
// scratch slabs backing the concurrent buffer's snapshot reads.
// See objpool.go and slab.go for implementation details.
package pool
