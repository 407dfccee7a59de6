// Package blobstore implements the Blob Store: immutable byte vectors
// keyed by a device-scoped ID, as used for MODE_ID blobs.
package blobstore

import (
	"sync"

	"github.com/vellum-os/drmcore/internal/ids"
)

// Store holds registered blobs, keyed by ID.
type Store struct {
	mu    sync.RWMutex
	alloc *ids.Allocator
	blobs map[uint32][]byte
}

// New returns an empty Store.
func New(alloc *ids.Allocator) *Store {
	return &Store{alloc: alloc, blobs: make(map[uint32][]byte)}
}

// Register copies data into the store and returns its new ID.
func (s *Store) Register(data []byte) uint32 {
	cp := make([]byte, len(data))
	copy(cp, data)

	id := s.alloc.Alloc()
	s.mu.Lock()
	s.blobs[id] = cp
	s.mu.Unlock()
	return id
}

// Find returns the blob's bytes and true, or (nil, false) if id is unknown.
func (s *Store) Find(id uint32) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[id]
	return data, ok
}

// Delete removes a blob, returning true if it existed.
func (s *Store) Delete(id uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[id]; !ok {
		return false
	}
	delete(s.blobs, id)
	s.alloc.Release(id)
	return true
}
