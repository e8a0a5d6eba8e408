// Package api
// Author: momentics
//
// Common error values shared across the library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrPoolDestroyed   = fmt.Errorf("slot pool is destroyed")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrShortBuffer     = fmt.Errorf("buffer too short")
	ErrSessionNotFound = fmt.Errorf("session not found")
	ErrExecutorClosed  = fmt.Errorf("executor is closed")
)
