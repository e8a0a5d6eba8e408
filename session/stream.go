// File: session/stream.go
// Package session
// Author: momentics
// License: Apache-2.0
//
// Producer-side stream handle. A Stream stamps its session id and the
// lifecycle phase onto each outgoing descriptor, and retires the
// registry entry once the stream reaches a terminal phase.

package session

import (
	"github.com/momentics/hioload-ffi/api"
)

// Stream emits the descriptor sequence of one session:
// Start, zero or more Data, then End or Fail.
type Stream struct {
	reg *Registry
	id  uint32
}

// OpenStream registers h and returns the producer handle for the new
// session.
func (r *Registry) OpenStream(h api.Handler) *Stream {
	return &Stream{reg: r, id: r.Open(h)}
}

// ID returns the stream's session id.
func (s *Stream) ID() uint32 { return s.id }

// Start delivers the opening event.
func (s *Stream) Start(method uint32, data []byte) bool {
	return s.emit(api.PhaseStart, method, data)
}

// Send delivers one data event. The view in data must stay valid for
// the duration of the call and is not retained.
func (s *Stream) Send(method uint32, data []byte) bool {
	return s.emit(api.PhaseData, method, data)
}

// End delivers the terminal success event and closes the session.
func (s *Stream) End(method uint32, data []byte) bool {
	defer s.reg.Close(s.id)
	return s.emit(api.PhaseEnd, method, data)
}

// Fail delivers the terminal error event and closes the session.
func (s *Stream) Fail(method uint32, data []byte) bool {
	defer s.reg.Close(s.id)
	return s.emit(api.PhaseError, method, data)
}

func (s *Stream) emit(phase api.Phase, method uint32, data []byte) bool {
	d := api.Descriptor{
		SessionID: s.id,
		Phase:     phase,
		Method:    method,
		Data:      data,
	}
	return s.reg.Dispatch(&d)
}
