//go:build linux

// File: pool/alloc_linux.go
// Author: momentics
//
// Linux slot allocator backed by anonymous page mappings. Keeps slot
// storage off the Go heap so held slots never add GC scan work.

package pool

import (
	"golang.org/x/sys/unix"
)

type mmapAllocator struct{}

func defaultAllocator() Allocator { return mmapAllocator{} }

func (mmapAllocator) Alloc(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

func (mmapAllocator) Free(slot []byte) {
	if cap(slot) == 0 {
		return
	}
	// Munmap wants the original mapping extent, hence the full capacity.
	_ = unix.Munmap(slot[:cap(slot)])
}
