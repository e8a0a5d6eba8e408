//go:build !linux

// File: pool/alloc_stub.go
// Author: momentics
//
// Heap-backed default allocator for platforms without the mmap path.

package pool

func defaultAllocator() Allocator { return heapAllocator{} }
