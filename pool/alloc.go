// File: pool/alloc.go
// Author: momentics
// License: Apache-2.0
//
// Slot storage allocation. Platform files select the default allocator;
// the heap allocator is always available as the portable fallback.

package pool

// Allocator provides and reclaims slot storage. A slot's capacity is
// fixed at allocation; reslicing its length is fine, moving its base is
// not, since Free reclaims from the base address.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(slot []byte)
}

// heapAllocator backs slots with ordinary garbage-collected slices.
type heapAllocator struct{}

// NewHeapAllocator returns the portable heap-backed allocator.
func NewHeapAllocator() Allocator { return heapAllocator{} }

func (heapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Free is a no-op: the collector reclaims heap slots once unreferenced.
func (heapAllocator) Free([]byte) {}
