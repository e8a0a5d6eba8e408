// File: pool/doc.go
// Author: momentics
// License: Apache-2.0
//
// Package pool provides a capacity-bounded, last-in-first-out recycler
// of byte storage slots.
//
// The pool never allocates on the acquire path: a miss is a normal
// signal that the caller should allocate directly (NewSlot). A release
// into a saturated pool silently frees the slot instead of growing,
// bounding resident memory regardless of burst behavior.
//
// A SlotPool is not internally synchronized. Use one pool per producer,
// or wrap a shared instance in Shared with an explicit lock.
package pool
