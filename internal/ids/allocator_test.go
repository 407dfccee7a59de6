package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocatorMonotonic(t *testing.T) {
	a := NewAllocator()
	first := a.Alloc()
	second := a.Alloc()
	assert.NotZero(t, first, "ID 0 is reserved and should never be allocated")
	assert.Equal(t, first+1, second)
}

func TestAllocatorRecycles(t *testing.T) {
	a := NewAllocator()
	id := a.Alloc()
	a.Release(id)
	next := a.Alloc()
	assert.Equal(t, id, next, "expected the released ID to be recycled")
}

func TestAllocatorConcurrentUnique(t *testing.T) {
	a := NewAllocator()
	const n = 1000
	seen := make(chan uint32, n)
	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func() {
			seen <- a.Alloc()
		}()
	}
	go func() {
		ids := make(map[uint32]bool)
		for i := 0; i < n; i++ {
			id := <-seen
			assert.Falsef(t, ids[id], "duplicate ID allocated: %d", id)
			ids[id] = true
		}
		close(done)
	}()
	<-done
}
