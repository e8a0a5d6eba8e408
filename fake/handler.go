// File: fake/handler.go
// Package fake provides test doubles for the event boundary.
// Author: momentics
// License: Apache-2.0

package fake

import (
	"github.com/momentics/hioload-ffi/api"
)

// Event is one observed dispatch, with the payload copied out so tests
// can inspect it after the borrowed view expires.
type Event struct {
	SessionID uint32
	Phase     api.Phase
	Method    uint32
	Len       uint64
	Cap       uint64
	Payload   []byte
}

// Handler records every event it receives. Not safe for concurrent
// dispatch; give each producer goroutine its own.
type Handler struct {
	Events []Event
}

func (h *Handler) HandleEvent(d *api.Descriptor) {
	ev := Event{
		SessionID: d.SessionID,
		Phase:     d.Phase,
		Method:    d.Method,
		Len:       d.Len(),
		Cap:       d.Cap(),
	}
	if len(d.Data) > 0 {
		ev.Payload = append([]byte(nil), d.Data...)
	}
	h.Events = append(h.Events, ev)
}

// Last returns the most recent event, or a zero Event when none were
// dispatched.
func (h *Handler) Last() Event {
	if len(h.Events) == 0 {
		return Event{}
	}
	return h.Events[len(h.Events)-1]
}
