// File: dispatch/dispatch.go
// Package dispatch implements the synchronous event call path between a
// producer and its registered handler.
// Author: momentics
// License: Apache-2.0
//
// Dispatch is a typed pass-through: no copy of the byte range, no heap
// allocation, no queuing or deferral. The call runs on the producer's
// goroutine and blocks until the handler returns.

package dispatch

import (
	"github.com/momentics/hioload-ffi/api"
)

// Dispatcher delivers descriptors to a single bound handler.
//
// The descriptor's byte view must stay valid for the whole call; the
// handler must not retain it past return. Phase sequencing is the
// producer's responsibility and is only carried through here.
type Dispatcher struct {
	h api.Handler
}

// New returns a dispatcher bound to h. Returns nil for a nil handler.
func New(h api.Handler) *Dispatcher {
	if h == nil {
		return nil
	}
	return &Dispatcher{h: h}
}

// Dispatch invokes the bound handler synchronously with d.
func (dp *Dispatcher) Dispatch(d *api.Descriptor) {
	dp.h.HandleEvent(d)
}

// Call invokes h directly with d, for producers that carry the handler
// themselves instead of binding a Dispatcher.
func Call(h api.Handler, d *api.Descriptor) {
	h.HandleEvent(d)
}
