// File: pool/slotpool.go
// Package pool implements the LIFO slot recycler.
// Author: momentics
// License: Apache-2.0

package pool

import (
	"github.com/momentics/hioload-ffi/api"
)

// SlotPool recycles fixed-capacity byte slots in last-in-first-out
// order, so the most recently touched storage is handed out next.
//
// The pool owns the storage of every slot it currently holds. Ownership
// transfers to the caller on Acquire and back on Release; a slot
// acquired and never released is the caller's leak, not the pool's.
type SlotPool struct {
	free      [][]byte
	limit     int
	alloc     Allocator
	destroyed bool
	stats     api.SlotPoolStats
}

// NewSlotPool creates a pool holding at most capacity slots, using the
// platform default allocator for fallback slots and saturated frees.
// Returns nil for a non-positive capacity.
func NewSlotPool(capacity int) *SlotPool {
	return NewSlotPoolWithAllocator(capacity, defaultAllocator())
}

// NewSlotPoolWithAllocator is NewSlotPool with an explicit slot
// allocator. Every slot released into the pool must originate from the
// same allocator, so that saturated drops and Destroy free correctly.
func NewSlotPoolWithAllocator(capacity int, alloc Allocator) *SlotPool {
	if capacity <= 0 || alloc == nil {
		return nil
	}
	return &SlotPool{
		free:  make([][]byte, 0, capacity),
		limit: capacity,
		alloc: alloc,
	}
}

// Acquire pops the most recently released slot. ok is false when the
// pool holds nothing; the caller then allocates directly (NewSlot).
// Slot contents and length are returned exactly as stored: the pool
// performs no zeroing.
func (p *SlotPool) Acquire() (slot []byte, ok bool) {
	n := len(p.free)
	if n == 0 {
		p.stats.Misses++
		return nil, false
	}
	slot = p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	p.stats.Acquired++
	return slot, true
}

// Release stores slot for reuse by a future Acquire. When the pool is
// already at capacity the slot's storage is freed instead; either way
// the caller has given the slot up.
func (p *SlotPool) Release(slot []byte) {
	if slot == nil || p.destroyed {
		return
	}
	if len(p.free) >= p.limit {
		p.alloc.Free(slot)
		p.stats.Dropped++
		return
	}
	p.free = append(p.free, slot)
	p.stats.Released++
}

// NewSlot allocates a fresh slot of the given size from the pool's
// allocator. This is the fallback path for an Acquire miss; routing it
// through the pool keeps alloc and free sources matched.
func (p *SlotPool) NewSlot(size int) ([]byte, error) {
	if p.destroyed {
		return nil, api.ErrPoolDestroyed
	}
	if size <= 0 {
		return nil, api.ErrInvalidArgument
	}
	return p.alloc.Alloc(size)
}

// Destroy frees every held slot plus bookkeeping. No operation on the
// pool is valid afterwards.
func (p *SlotPool) Destroy() {
	for i, slot := range p.free {
		p.alloc.Free(slot)
		p.free[i] = nil
	}
	p.free = nil
	p.destroyed = true
}

// Len returns the number of slots currently held.
func (p *SlotPool) Len() int { return len(p.free) }

// Cap returns the configured maximum number of held slots.
func (p *SlotPool) Cap() int { return p.limit }

// Stats exposes recycling counters.
func (p *SlotPool) Stats() api.SlotPoolStats { return p.stats }

var _ api.SlotPool = (*SlotPool)(nil)
