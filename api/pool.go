// File: api/pool.go
// Author: momentics
//
// Abstract pooling API: capacity-bounded recycling of storage slots.

package api

// SlotPool recycles fixed-capacity byte storage to keep the event hot
// path allocation-free.
//
// Implementations are not internally synchronized; the recommended
// design is one pool per producer, with explicit external locking for
// the shared case.
type SlotPool interface {
	// Acquire pops the most recently released slot. ok is false when
	// the pool holds nothing; the pool never allocates on a miss.
	Acquire() (slot []byte, ok bool)

	// Release hands a slot back for reuse. When the pool is already at
	// capacity the slot's storage is freed instead of stored.
	Release(slot []byte)

	// Stats exposes recycling counters for observability.
	Stats() SlotPoolStats
}

// SlotPoolStats aggregates slot reuse accounting.
type SlotPoolStats struct {
	Acquired uint64 // successful Acquire calls
	Misses   uint64 // Acquire calls on an empty pool
	Released uint64 // slots stored back for reuse
	Dropped  uint64 // slots freed on saturated Release
}
