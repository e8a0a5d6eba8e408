// File: session/doc.go
// Author: momentics
// License: Apache-2.0
//
// Package session tracks the multiplexed logical streams whose events
// cross the dispatch boundary. A Registry maps session ids to their
// handlers; a Stream is the producer-side handle that stamps ids and
// lifecycle phases onto outgoing descriptors.
package session
