// Package bo implements the Buffer Object Registry: a device-wide
// credential-keyed export map, plus the per-client local handle table used
// by Client Files.
package bo

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vellum-os/drmcore/internal/memio"
)

// MemoryProvider is the opaque backing-store collaborator a BufferObject
// addresses into; spec.md §1 scopes the concrete allocator out, so this is
// just a handle/offset pair.
type MemoryProvider struct {
	Handle uintptr
	Offset uint64
}

// Object is a GPU-visible buffer: a size, a memory provider, and a
// device-installed mapping token (upper 32 bits: aggregator slot).
type Object struct {
	Size    uint64
	Memory  MemoryProvider
	Mapping uint64

	// Region backs this BO with real anonymous shared memory, standing in
	// for the opaque allocator spec.md §1 scopes out — the aggregator
	// publishes it so mmap(fd, offset=mapping) resolves to real pages.
	Region *memio.Region
}

// Registry is the device-wide credential map: Object instances registered
// for cross-process export, keyed by a 16-byte opaque credential token.
type Registry struct {
	mu     sync.RWMutex
	byCred map[uuid.UUID]*Object
}

// NewRegistry returns an empty device-wide BO registry.
func NewRegistry() *Registry {
	return &Registry{byCred: make(map[uuid.UUID]*Object)}
}

// Register exposes bo under creds for later Find by another file.
func (r *Registry) Register(creds uuid.UUID, obj *Object) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCred[creds] = obj
}

// Find returns the BO registered under creds, if any.
func (r *Registry) Find(creds uuid.UUID) (*Object, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	obj, ok := r.byCred[creds]
	return obj, ok
}

// HandleTable is a per-client-File local handle namespace: 32-bit handles
// mapping to BOs. Handles are never reused while live — a released handle
// is simply forgotten, not recycled, since the File that owns it controls
// its own monotonic counter.
type HandleTable struct {
	mu      sync.RWMutex
	next    uint32
	handles map[uint32]*Object
}

// NewHandleTable returns an empty per-File handle table.
func NewHandleTable() *HandleTable {
	return &HandleTable{next: 1, handles: make(map[uint32]*Object)}
}

// Create installs obj under a fresh handle and returns it.
func (t *HandleTable) Create(obj *Object) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := t.next
	t.next++
	t.handles[h] = obj
	return h
}

// Resolve returns the BO registered under handle, if any.
func (t *HandleTable) Resolve(handle uint32) (*Object, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	obj, ok := t.handles[handle]
	return obj, ok
}

// Lookup performs the reverse scan: the handle (if any) that resolves to
// obj. A linear scan is acceptable per spec.md §4.4.
func (t *HandleTable) Lookup(obj *Object) (uint32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for h, o := range t.handles {
		if o == obj {
			return h, true
		}
	}
	return 0, false
}
