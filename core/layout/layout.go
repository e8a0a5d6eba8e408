// File: core/layout/layout.go
// Package layout implements the packed descriptor layout crossing the
// producer/handler boundary.
// Author: momentics
// License: Apache-2.0
//
// The layout is fixed-offset, little-endian, and padding-free so both
// sides of the boundary agree on it bit-for-bit:
//
//	session_id : uint32   offset 0
//	phase      : uint8    offset 4
//	method     : uint32   offset 5
//	pointer    : uint64   offset 9
//	length     : uint64   offset 17
//	capacity   : uint64   offset 25
//
// pointer carries the address of the first payload byte (zero when the
// payload is empty); capacity equals length when the storage is not
// pool-backed. The packed form borrows the same storage the descriptor
// does: unmarshalling on the far side yields a view, never a copy.

package layout

import (
	"encoding/binary"
	"unsafe"

	"github.com/momentics/hioload-ffi/api"
)

// Field offsets within the packed descriptor.
const (
	offSessionID = 0
	offPhase     = 4
	offMethod    = 5
	offPointer   = 9
	offLength    = 17
	offCapacity  = 25

	// DescriptorSize is the packed descriptor size in bytes.
	DescriptorSize = 33
)

// Marshal packs d into dst, which must hold at least DescriptorSize
// bytes. The payload itself is not copied; only its address, length and
// capacity cross in the packed form.
func Marshal(d *api.Descriptor, dst []byte) error {
	if len(dst) < DescriptorSize {
		return api.ErrShortBuffer
	}
	var addr uint64
	if ptr := unsafe.SliceData(d.Data); ptr != nil {
		addr = uint64(uintptr(unsafe.Pointer(ptr)))
	}
	binary.LittleEndian.PutUint32(dst[offSessionID:], d.SessionID)
	dst[offPhase] = byte(d.Phase)
	binary.LittleEndian.PutUint32(dst[offMethod:], d.Method)
	binary.LittleEndian.PutUint64(dst[offPointer:], addr)
	binary.LittleEndian.PutUint64(dst[offLength:], d.Len())
	binary.LittleEndian.PutUint64(dst[offCapacity:], d.Cap())
	return nil
}

// Unmarshal reconstructs a descriptor from its packed form,
// re-borrowing the byte view at the encoded address. The view obeys the
// same lifetime contract as the one Marshal saw: it must not outlive
// the dispatch call it belongs to.
func Unmarshal(src []byte) (api.Descriptor, error) {
	if len(src) < DescriptorSize {
		return api.Descriptor{}, api.ErrShortBuffer
	}
	length := binary.LittleEndian.Uint64(src[offLength:])
	capacity := binary.LittleEndian.Uint64(src[offCapacity:])
	addr := binary.LittleEndian.Uint64(src[offPointer:])
	if capacity < length {
		return api.Descriptor{}, api.ErrInvalidArgument
	}
	if addr == 0 && length > 0 {
		return api.Descriptor{}, api.ErrInvalidArgument
	}

	d := api.Descriptor{
		SessionID: binary.LittleEndian.Uint32(src[offSessionID:]),
		Phase:     api.Phase(src[offPhase]),
		Method:    binary.LittleEndian.Uint32(src[offMethod:]),
	}
	if !d.Phase.Valid() {
		return api.Descriptor{}, api.ErrInvalidArgument
	}
	if addr != 0 && capacity > 0 {
		base := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), capacity)
		d.Data = base[:length]
	}
	return d, nil
}
