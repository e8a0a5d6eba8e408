// File: adapters/handler_adapter.go
// Package adapters
// Author: momentics
//
// HandlerFunc glue and extensible middleware chaining.

package adapters

import (
	"log"

	"github.com/momentics/hioload-ffi/api"
)

// HandlerFunc converts a function into an api.Handler.
type HandlerFunc func(d *api.Descriptor)

// HandleEvent calls the underlying function.
func (f HandlerFunc) HandleEvent(d *api.Descriptor) {
	f(d)
}

// MiddlewareHandler wraps a base Handler and applies middleware in
// chain. Middleware sits outside the zero-allocation contract of the
// bare dispatch path; keep it off latency-critical producers.
type MiddlewareHandler struct {
	handler    api.Handler
	middleware []func(api.Handler) api.Handler
}

// NewMiddlewareHandler creates a new MiddlewareHandler for the given base handler.
func NewMiddlewareHandler(handler api.Handler) *MiddlewareHandler {
	return &MiddlewareHandler{
		handler:    handler,
		middleware: make([]func(api.Handler) api.Handler, 0),
	}
}

// Use appends a middleware to the chain.
func (m *MiddlewareHandler) Use(mw func(api.Handler) api.Handler) *MiddlewareHandler {
	m.middleware = append(m.middleware, mw)
	return m
}

// HandleEvent applies all middleware then calls the base handler.
func (m *MiddlewareHandler) HandleEvent(d *api.Descriptor) {
	handler := m.handler
	for i := len(m.middleware) - 1; i >= 0; i-- {
		handler = m.middleware[i](handler)
	}
	handler.HandleEvent(d)
}

// LoggingMiddleware logs session, phase, and payload length of each event.
func LoggingMiddleware(next api.Handler) api.Handler {
	return HandlerFunc(func(d *api.Descriptor) {
		log.Printf("[Handler] session=%d phase=%s method=%d len=%d",
			d.SessionID, d.Phase, d.Method, d.Len())
		next.HandleEvent(d)
	})
}

// RecoveryMiddleware recovers from panics in the handler, so a
// misbehaving handler cannot unwind through the producer's call site.
func RecoveryMiddleware(next api.Handler) api.Handler {
	return HandlerFunc(func(d *api.Descriptor) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Handler] Panic recovered: session=%d: %v", d.SessionID, r)
			}
		}()
		next.HandleEvent(d)
	})
}
