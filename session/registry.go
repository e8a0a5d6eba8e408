// File: session/registry.go
// Package session
// Author: momentics
//
// Sharded, thread-safe handler registry for high concurrency.

package session

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-ffi/api"
)

// Registry maps session ids to their handlers.
type Registry struct {
	shards []*shard
	mask   uint32
	nextID atomic.Uint32
}

type shard struct {
	mu       sync.RWMutex
	handlers map[uint32]api.Handler
}

// NewRegistry constructs a sharded registry with shardCount shards.
// Non-positive counts default to 16.
func NewRegistry(shardCount int) *Registry {
	if shardCount <= 0 {
		shardCount = 16
	}
	// power-of-two shards for bitmasking
	m := nextPowerOfTwo(uint32(shardCount))
	shards := make([]*shard, m)
	for i := range shards {
		shards[i] = &shard{handlers: make(map[uint32]api.Handler)}
	}
	return &Registry{shards: shards, mask: m - 1}
}

// shard picks the correct shard for a given id.
func (r *Registry) shard(id uint32) *shard {
	return r.shards[id&r.mask]
}

// Open registers h under a freshly assigned session id. Ids start at 1
// and wrap; they are not unique across process lifetime.
func (r *Registry) Open(h api.Handler) uint32 {
	for {
		id := r.nextID.Add(1)
		if id == 0 {
			continue
		}
		sh := r.shard(id)
		sh.mu.Lock()
		if _, taken := sh.handlers[id]; !taken {
			sh.handlers[id] = h
			sh.mu.Unlock()
			return id
		}
		sh.mu.Unlock()
	}
}

// Register binds h to an externally chosen id. Returns
// api.ErrInvalidArgument for id zero or a nil handler, and false with
// no error when the id is already bound.
func (r *Registry) Register(id uint32, h api.Handler) (bool, error) {
	if id == 0 || h == nil {
		return false, api.ErrInvalidArgument
	}
	sh := r.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, taken := sh.handlers[id]; taken {
		return false, nil
	}
	sh.handlers[id] = h
	return true, nil
}

// Get fetches the handler for id if present.
func (r *Registry) Get(id uint32) (api.Handler, bool) {
	sh := r.shard(id)
	sh.mu.RLock()
	h, ok := sh.handlers[id]
	sh.mu.RUnlock()
	return h, ok
}

// Dispatch routes d to the handler registered for d.SessionID,
// synchronously on the calling goroutine. Events for unknown sessions
// are dropped; the return value reports delivery.
func (r *Registry) Dispatch(d *api.Descriptor) bool {
	h, ok := r.Get(d.SessionID)
	if !ok {
		return false
	}
	h.HandleEvent(d)
	return true
}

// Close removes the session. Its id becomes reusable.
func (r *Registry) Close(id uint32) {
	sh := r.shard(id)
	sh.mu.Lock()
	delete(sh.handlers, id)
	sh.mu.Unlock()
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	n := 0
	for _, sh := range r.shards {
		sh.mu.RLock()
		n += len(sh.handlers)
		sh.mu.RUnlock()
	}
	return n
}

// Range applies fn to every open session.
func (r *Registry) Range(fn func(id uint32, h api.Handler)) {
	for _, sh := range r.shards {
		sh.mu.RLock()
		for id, h := range sh.handlers {
			fn(id, h)
		}
		sh.mu.RUnlock()
	}
}

// nextPowerOfTwo returns the next power-of-two >= v.
func nextPowerOfTwo(v uint32) uint32 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}
