// File: api/handler.go
// Package api defines the Handler capability.
// Author: momentics
// License: Apache-2.0

package api

// Handler consumes one event descriptor per call.
//
// HandleEvent is fire-and-forget: any result travels through the
// handler's own side channel, never back through this call. The
// descriptor and its byte view are valid only until HandleEvent
// returns.
type Handler interface {
	HandleEvent(d *Descriptor)
}
