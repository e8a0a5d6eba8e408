// Package api
// Author: momentics
//
// Zero-copy event descriptor crossing the producer/handler boundary.
//
// A Descriptor is a passive view: it never owns the bytes it references.
// The view is valid only for the duration of a single dispatch call.

package api

// Phase marks an event's position in its session's lifecycle.
//
// Per session, producers emit Start, zero or more Data, then exactly one
// of End or Error. The boundary carries the value through without
// enforcing the sequence.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseData
	PhaseEnd
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseData:
		return "data"
	case PhaseEnd:
		return "end"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether p ends a session's stream.
func (p Phase) Terminal() bool {
	return p == PhaseEnd || p == PhaseError
}

// Valid reports whether p is one of the defined lifecycle phases.
func (p Phase) Valid() bool {
	return p <= PhaseError
}

// Reserved control method selectors. Selectors are otherwise opaque to
// this library and interpreted only by handlers.
const (
	MethodNext       uint32 = 1
	MethodEnd        uint32 = 2
	MethodGetPayload uint32 = 3
)

// Descriptor describes one borrowed byte range plus routing metadata.
//
// Data is a non-owning view of the producer's storage: len(Data) is the
// number of valid bytes, cap(Data) the usable storage behind it. A
// handler must not retain Data, or any reslice of it, past the dispatch
// call that delivered the descriptor.
type Descriptor struct {
	// SessionID identifies the multiplexed logical stream. IDs are not
	// globally unique across process lifetime; they are reused after a
	// session closes.
	SessionID uint32

	// Phase is this event's position in the session lifecycle.
	Phase Phase

	// Method selects the logical operation the payload corresponds to.
	Method uint32

	// Data is the borrowed payload view.
	Data []byte
}

// Len returns the number of valid payload bytes.
func (d *Descriptor) Len() uint64 { return uint64(len(d.Data)) }

// Cap returns the usable storage behind the view. For pool-backed
// slots this exceeds Len when the producer wrote less than the slot
// holds, letting the same allocation serve the next write.
func (d *Descriptor) Cap() uint64 { return uint64(cap(d.Data)) }
