package drmcore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vellum-os/drmcore/internal/blobstore"
	"github.com/vellum-os/drmcore/internal/bo"
	"github.com/vellum-os/drmcore/internal/ids"
	"github.com/vellum-os/drmcore/internal/logging"
	"github.com/vellum-os/drmcore/internal/uapi"
)

// Device owns every registry the mode-setting core needs: Mode Objects,
// blobs, the property catalog, buffer objects, and the ID allocators
// backing them. Object and blob IDs share a single allocator so they stay
// unique per Device across all object kinds and blobs, per spec.md §3.
type Device struct {
	mu         sync.RWMutex
	objectIDs  *ids.Allocator
	memSlotIDs *ids.Allocator

	objects map[uint32]*ModeObject
	blobs   *blobstore.Store
	boRegs  *bo.Registry

	crtcs      []*ModeObject // positional index order, stable userspace identifiers
	encoders   []*ModeObject
	connectors []*ModeObject

	properties  map[string]*Property
	propsByID   map[uint32]*Property
	propertyIDs *ids.Allocator

	liveCrtcs      map[uint32]*CrtcState
	livePlanes     map[uint32]*PlaneState
	liveConnectors map[uint32]*ConnectorState
	liveMu         sync.RWMutex

	commitMu sync.Mutex

	minWidth, minHeight uint16
	maxWidth, maxHeight uint16

	metrics  *Metrics
	observer Observer
	log      *logging.Logger
}

// DeviceOption configures a Device at construction time.
type DeviceOption func(*Device)

// WithDimensionClamps records the Device's min/max mode dimensions. Nothing
// in the core filters by them: addDmtModes takes its bounds as arguments.
func WithDimensionClamps(minW, minH, maxW, maxH uint16) DeviceOption {
	return func(d *Device) {
		d.minWidth, d.minHeight = minW, minH
		d.maxWidth, d.maxHeight = maxW, maxH
	}
}

// WithObserver attaches a metrics Observer; defaults to NoOpObserver.
func WithObserver(o Observer) DeviceOption {
	return func(d *Device) { d.observer = o }
}

// WithLogger attaches a Logger; defaults to logging.Default().
func WithLogger(l *logging.Logger) DeviceOption {
	return func(d *Device) { d.log = l }
}

// NewDevice constructs an empty Device and registers the canonical
// property catalog (spec.md §4.1).
func NewDevice(opts ...DeviceOption) *Device {
	d := &Device{
		objectIDs:      ids.NewAllocator(),
		memSlotIDs:     ids.NewAllocator(),
		objects:        make(map[uint32]*ModeObject),
		boRegs:         bo.NewRegistry(),
		properties:     make(map[string]*Property),
		propsByID:      make(map[uint32]*Property),
		propertyIDs:    ids.NewAllocator(),
		liveCrtcs:      make(map[uint32]*CrtcState),
		livePlanes:     make(map[uint32]*PlaneState),
		liveConnectors: make(map[uint32]*ConnectorState),
		minWidth:       DefaultMinWidth,
		minHeight:      DefaultMinHeight,
		maxWidth:       DefaultMaxWidth,
		maxHeight:      DefaultMaxHeight,
		metrics:        NewMetrics(),
	}
	d.blobs = blobstore.New(d.objectIDs)
	d.observer = NewMetricsObserver(d.metrics)
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = logging.Default()
	}
	d.registerCanonicalProperties()
	return d
}

func (d *Device) now() int64 {
	return time.Now().UnixNano()
}

// Metrics returns the device's metrics collector.
func (d *Device) Metrics() *Metrics { return d.metrics }

// --- Object registry ---------------------------------------------------

func (d *Device) registerObject(obj *ModeObject) {
	d.mu.Lock()
	d.objects[obj.ID] = obj
	d.mu.Unlock()
}

// FindObject looks up id without extending its lifetime — callers hold a
// reference only for the duration they keep the returned pointer.
func (d *Device) FindObject(id uint32) (*ModeObject, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	obj, ok := d.objects[id]
	return obj, ok
}

// RegisterCrtc creates a new Crtc at the next dense index and installs its
// live state as inactive with no mode.
func (d *Device) RegisterCrtc() *ModeObject {
	d.mu.Lock()
	index := len(d.crtcs)
	d.mu.Unlock()

	id := d.objectIDs.Alloc()
	obj := &ModeObject{ID: id, Type: ObjectCrtc, crtc: &Crtc{ID: id, Index: index}}

	d.mu.Lock()
	d.objects[id] = obj
	d.crtcs = append(d.crtcs, obj)
	d.mu.Unlock()

	d.liveMu.Lock()
	d.liveCrtcs[id] = &CrtcState{owner: ObjectRef{Device: d, ID: id}}
	d.liveMu.Unlock()
	return obj
}

// RegisterEncoder creates a new Encoder of encoderType, advertising
// possibleCrtcs/possibleClones as the CRTC IDs it may drive or clone with.
func (d *Device) RegisterEncoder(encoderType uint32, possibleCrtcs, possibleClones []uint32) *ModeObject {
	d.mu.Lock()
	index := len(d.encoders)
	d.mu.Unlock()

	id := d.objectIDs.Alloc()
	enc := &Encoder{
		ID:             id,
		Index:          index,
		EncoderType:    encoderType,
		PossibleCrtcs:  toSet(possibleCrtcs),
		PossibleClones: toSet(possibleClones),
	}
	obj := &ModeObject{ID: id, Type: ObjectEncoder, encoder: enc}

	d.mu.Lock()
	d.objects[id] = obj
	d.encoders = append(d.encoders, obj)
	d.mu.Unlock()
	return obj
}

// RegisterConnector creates a new Connector of connType with the given
// physical size, installing DPMS=On and no assigned CRTC as its live
// state.
func (d *Device) RegisterConnector(connType uint32, physWidthMM, physHeightMM uint32, possibleEncoders []uint32) *ModeObject {
	id := d.objectIDs.Alloc()
	conn := &Connector{
		ID:               id,
		ConnectorType:    connType,
		PhysicalWidthMM:  physWidthMM,
		PhysicalHeightMM: physHeightMM,
		PossibleEncoders: toSet(possibleEncoders),
		Status:           ConnectionStatusUnknown,
	}
	obj := &ModeObject{ID: id, Type: ObjectConnector, connector: conn}

	d.mu.Lock()
	d.objects[id] = obj
	d.connectors = append(d.connectors, obj)
	d.mu.Unlock()

	d.liveMu.Lock()
	d.liveConnectors[id] = &ConnectorState{owner: ObjectRef{Device: d, ID: id}, Dpms: DpmsOn}
	d.liveMu.Unlock()
	return obj
}

// RegisterPlane creates a new Plane of the given fixed type, advertising
// possibleCrtcs as the CRTC IDs it may be assigned to.
func (d *Device) RegisterPlane(planeType PlaneType, possibleCrtcs []uint32) *ModeObject {
	id := d.objectIDs.Alloc()
	pl := &Plane{ID: id, Type: planeType, PossibleCrtcs: toSet(possibleCrtcs)}
	obj := &ModeObject{ID: id, Type: ObjectPlane, plane: pl}

	d.mu.Lock()
	d.objects[id] = obj
	d.mu.Unlock()

	d.liveMu.Lock()
	d.livePlanes[id] = &PlaneState{owner: ObjectRef{Device: d, ID: id}}
	d.liveMu.Unlock()
	return obj
}

// RegisterFrameBuffer creates a client-requested FrameBuffer object.
// Concrete pixel storage is driver-defined; only geometry is tracked here.
func (d *Device) RegisterFrameBuffer(width, height, pitch uint32, format uint32) *ModeObject {
	id := d.objectIDs.Alloc()
	fb := &FrameBuffer{ID: id, Width: width, Height: height, Pitch: pitch, Format: uapi.Fourcc(format)}
	obj := &ModeObject{ID: id, Type: ObjectFrameBuffer, framebuffer: fb}

	d.mu.Lock()
	d.objects[id] = obj
	d.mu.Unlock()
	return obj
}

// DestroyObject removes obj from the registry. Existing holders of obj
// keep their reference; only findObject stops resolving it.
func (d *Device) DestroyObject(id uint32) {
	d.mu.Lock()
	delete(d.objects, id)
	d.mu.Unlock()
}

func toSet(ids []uint32) map[uint32]bool {
	s := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// --- Blob store ----------------------------------------------------------

// RegisterBlob stores data under a fresh ID shared with the object ID
// space.
func (d *Device) RegisterBlob(data []byte) uint32 {
	return d.blobs.Register(data)
}

// FindBlob returns the bytes registered under id, if any.
func (d *Device) FindBlob(id uint32) ([]byte, bool) {
	return d.blobs.Find(id)
}

// DeleteBlob removes id from the blob store, returning false if id was not
// registered.
func (d *Device) DeleteBlob(id uint32) bool {
	return d.blobs.Delete(id)
}

// --- Buffer Object registry ----------------------------------------------

// RegisterBufferObject exposes obj under creds for later FindBufferObject
// by another file. Fails with KindFatal if obj violates the BO size
// invariant (spec.md §3: "BO size < 2^32") — a caller bug, not client input.
func (d *Device) RegisterBufferObject(obj *bo.Object, creds uuid.UUID) error {
	if obj.Size > MaxBufferObjectSize {
		return Fatal("RegisterBufferObject", "buffer object size exceeds the 2^32 invariant")
	}
	d.boRegs.Register(creds, obj)
	return nil
}

// FindBufferObject returns the BO registered under creds, if any.
func (d *Device) FindBufferObject(creds uuid.UUID) (*bo.Object, bool) {
	return d.boRegs.Find(creds)
}

// InstallMapping allocates a fresh memory slot for obj and stamps its
// mapping token (upper 32 bits = slot index, lower 32 bits reserved).
// Fails with KindFatal if obj violates the BO size invariant (spec.md §3:
// "BO size < 2^32") — a caller bug, not client input.
func (d *Device) InstallMapping(obj *bo.Object) (uint64, error) {
	if obj.Size > MaxBufferObjectSize {
		return 0, Fatal("InstallMapping", "buffer object size exceeds the 2^32 invariant")
	}
	slot := d.memSlotIDs.Alloc()
	obj.Mapping = uint64(slot) << 32
	return obj.Mapping, nil
}

// --- Live state accessors (used only by AtomicState forking) ------------

func (d *Device) liveCrtcState(id uint32) *CrtcState {
	d.liveMu.RLock()
	defer d.liveMu.RUnlock()
	if st, ok := d.liveCrtcs[id]; ok {
		return st
	}
	return &CrtcState{owner: ObjectRef{Device: d, ID: id}}
}

func (d *Device) livePlaneState(id uint32) *PlaneState {
	d.liveMu.RLock()
	defer d.liveMu.RUnlock()
	if st, ok := d.livePlanes[id]; ok {
		return st
	}
	return &PlaneState{owner: ObjectRef{Device: d, ID: id}}
}

func (d *Device) liveConnectorState(id uint32) *ConnectorState {
	d.liveMu.RLock()
	defer d.liveMu.RUnlock()
	if st, ok := d.liveConnectors[id]; ok {
		return st
	}
	return &ConnectorState{owner: ObjectRef{Device: d, ID: id}}
}

// CrtcState returns the current, committed state for a CRTC (distinct
// from AtomicState.Crtc, which forks a mutable copy for a transaction).
func (d *Device) CrtcState(id uint32) (*CrtcState, bool) {
	d.liveMu.RLock()
	defer d.liveMu.RUnlock()
	st, ok := d.liveCrtcs[id]
	return st, ok
}

// PlaneState returns the current, committed state for a Plane.
func (d *Device) PlaneState(id uint32) (*PlaneState, bool) {
	d.liveMu.RLock()
	defer d.liveMu.RUnlock()
	st, ok := d.livePlanes[id]
	return st, ok
}

// ConnectorState returns the current, committed state for a Connector.
func (d *Device) ConnectorState(id uint32) (*ConnectorState, bool) {
	d.liveMu.RLock()
	defer d.liveMu.RUnlock()
	st, ok := d.liveConnectors[id]
	return st, ok
}

// installState atomically replaces the live state for every sub-state
// state touched, under a single lock so no reader observes a partial
// commit.
func (d *Device) installState(state *AtomicState) {
	state.mu.Lock()
	defer state.mu.Unlock()

	d.liveMu.Lock()
	defer d.liveMu.Unlock()
	for id, st := range state.crtcs {
		d.liveCrtcs[id] = st
	}
	for id, st := range state.planes {
		d.livePlanes[id] = st
	}
	for id, st := range state.connectors {
		d.liveConnectors[id] = st
	}
}
