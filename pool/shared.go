// File: pool/shared.go
// Author: momentics
//
// Externally-locked wrapper for a SlotPool shared across goroutines.
// Locking is explicit by design: the bare pool never synchronizes.

package pool

import (
	"sync"

	"github.com/momentics/hioload-ffi/api"
)

// Shared guards a SlotPool with a caller-supplied lock.
type Shared struct {
	mu sync.Locker
	p  *SlotPool
}

// NewShared wraps p with mu. A nil mu gets a private sync.Mutex.
// Returns nil when p is nil.
func NewShared(p *SlotPool, mu sync.Locker) *Shared {
	if p == nil {
		return nil
	}
	if mu == nil {
		mu = &sync.Mutex{}
	}
	return &Shared{mu: mu, p: p}
}

func (s *Shared) Acquire() ([]byte, bool) {
	s.mu.Lock()
	slot, ok := s.p.Acquire()
	s.mu.Unlock()
	return slot, ok
}

func (s *Shared) Release(slot []byte) {
	s.mu.Lock()
	s.p.Release(slot)
	s.mu.Unlock()
}

func (s *Shared) NewSlot(size int) ([]byte, error) {
	s.mu.Lock()
	slot, err := s.p.NewSlot(size)
	s.mu.Unlock()
	return slot, err
}

func (s *Shared) Destroy() {
	s.mu.Lock()
	s.p.Destroy()
	s.mu.Unlock()
}

func (s *Shared) Stats() api.SlotPoolStats {
	s.mu.Lock()
	st := s.p.Stats()
	s.mu.Unlock()
	return st
}

var _ api.SlotPool = (*Shared)(nil)
