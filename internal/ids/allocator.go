// Package ids implements the monotonic 32-bit handle allocator shared by
// the object registry, the blob store, and the per-file memory aggregator.
package ids

import "sync"

// Allocator hands out unique uint32 IDs starting at 1 (0 is reserved to
// mean "no object"), recycling released IDs before minting new ones.
type Allocator struct {
	mu   sync.Mutex
	next uint32
	free []uint32
}

// NewAllocator returns an Allocator that mints IDs starting at 1.
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Alloc returns a fresh ID, reusing a released one if available.
func (a *Allocator) Alloc() uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		return id
	}
	id := a.next
	a.next++
	return id
}

// Release marks id as free for reuse by a future Alloc call.
func (a *Allocator) Release(id uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.free = append(a.free, id)
}
