// Package memio provides anonymous-mmap-backed shared memory for the
// status page and the per-File indirect memory aggregator, standing in for
// the real helCreateIndirectMemory/helAlterMemoryIndirection primitives
// that are out of scope per spec.md §1.
package memio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Region is a page-backed anonymous shared-memory mapping.
type Region struct {
	bytes []byte
}

// NewRegion allocates a fresh anonymous MAP_SHARED region of at least size
// bytes, so that mmap(fd, offset) by another process against the same
// descriptor (once plumbed through the lane transport) observes the same
// pages.
func NewRegion(size int) (*Region, error) {
	if size <= 0 {
		size = unix.Getpagesize()
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("memio: mmap failed: %w", err)
	}
	return &Region{bytes: b}, nil
}

// Bytes returns the region's backing memory.
func (r *Region) Bytes() []byte {
	return r.bytes
}

// Len returns the region's size in bytes.
func (r *Region) Len() int {
	return len(r.bytes)
}

// Close unmaps the region's memory.
func (r *Region) Close() error {
	if r.bytes == nil {
		return nil
	}
	err := unix.Munmap(r.bytes)
	r.bytes = nil
	return err
}

// Aggregator is the device-scoped address space of fixed slots that a
// Client File publishes BufferObject memory into; creating a local handle
// publishes bo.mapping>>32 here so mmap(fd, offset=mapping) resolves to the
// BO's pages.
const AggregatorSlots = 1024

// Aggregator maps aggregator slot indices to the Region backing each
// published BufferObject.
type Aggregator struct {
	slots [AggregatorSlots]*Region
}

// NewAggregator returns an empty 1024-slot aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Publish installs region at slot, returning an error if slot is out of
// range.
func (a *Aggregator) Publish(slot uint32, region *Region) error {
	if int(slot) >= AggregatorSlots {
		return fmt.Errorf("memio: slot %d out of range (max %d)", slot, AggregatorSlots-1)
	}
	a.slots[slot] = region
	return nil
}

// Access returns the region published at slot, if any.
func (a *Aggregator) Access(slot uint32) (*Region, bool) {
	if int(slot) >= AggregatorSlots {
		return nil, false
	}
	r := a.slots[slot]
	return r, r != nil
}
