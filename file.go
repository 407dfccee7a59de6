package drmcore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vellum-os/drmcore/internal/bell"
	"github.com/vellum-os/drmcore/internal/bo"
	"github.com/vellum-os/drmcore/internal/memio"
	"github.com/vellum-os/drmcore/internal/uapi"
)

// Event is one queued flip-complete notification.
type Event struct {
	Cookie      uint64
	CrtcID      uint32
	TimestampNs int64
}

// File is a client's per-open session: a local BO handle namespace, the
// framebuffers it created, an indirect memory aggregator, a pending event
// queue with wake-up, and the shared status page mirroring queue
// occupancy. Per spec.md §4.4.
type File struct {
	dev *Device

	handles *bo.HandleTable
	fbs     map[uint32]bool
	agg     *memio.Aggregator

	mu         sync.Mutex
	queue      []Event
	sequence   uint64
	statusPage *memio.Region

	bellC    *bell.Bell
	blocking bool
}

// NewFile opens a fresh Client File against dev. blocking controls read's
// behavior on an empty queue; DEV_OPEN's NONBLOCK flag clears it.
func NewFile(dev *Device, blocking bool) (*File, error) {
	page, err := memio.NewRegion(uapi.StatusPageSize)
	if err != nil {
		return nil, Fatal("NewFile", "failed to allocate status page: "+err.Error())
	}
	f := &File{
		dev:        dev,
		handles:    bo.NewHandleTable(),
		fbs:        make(map[uint32]bool),
		agg:        memio.NewAggregator(),
		statusPage: page,
		bellC:      bell.New(),
		blocking:   blocking,
	}
	f.writeStatusPageLocked()
	return f, nil
}

// StatusPage returns the shared-memory region backing (sequence, mask),
// pushed to the client alongside the sub-lane on DEV_OPEN.
func (f *File) StatusPage() *memio.Region {
	return f.statusPage
}

// AccessMemory returns the aggregator memory for the ReqAccessMem file
// operation.
func (f *File) AccessMemory(slot uint32) (*memio.Region, bool) {
	return f.agg.Access(slot)
}

// AttachFrameBuffer records fb as created by this file, for explicit
// detachment bookkeeping.
func (f *File) AttachFrameBuffer(fbID uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fbs[fbID] = true
}

// DetachFrameBuffer forgets fb, returning false if this file never created
// it.
func (f *File) DetachFrameBuffer(fbID uint32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.fbs[fbID] {
		return false
	}
	delete(f.fbs, fbID)
	return true
}

// createHandle installs obj under a fresh local handle and, if obj carries
// a backing Region, publishes it into the aggregator at the slot its
// mapping names.
func (f *File) createHandle(obj *bo.Object) uint32 {
	h := f.handles.Create(obj)
	if obj.Region != nil {
		slot := uint32(obj.Mapping >> 32)
		_ = f.agg.Publish(slot, obj.Region)
	}
	return h
}

// resolveHandle returns the BO a local handle names.
func (f *File) resolveHandle(handle uint32) (*bo.Object, bool) {
	return f.handles.Resolve(handle)
}

// getHandle is the reverse lookup: the local handle (if any) naming obj.
// A linear scan is acceptable per spec.md §4.4.
func (f *File) getHandle(obj *bo.Object) (uint32, bool) {
	return f.handles.Lookup(obj)
}

// exportBufferObject registers handle's BO under creds for cross-process
// import by another File.
func (f *File) exportBufferObject(handle uint32, creds uuid.UUID) error {
	obj, ok := f.handles.Resolve(handle)
	if !ok {
		return NewError("exportBufferObject", KindNotFound, "handle not resolved by this file")
	}
	return f.dev.RegisterBufferObject(obj, creds)
}

// importBufferObject resolves creds to its BO, creating a local handle if
// this file has not already imported it — re-importing the same creds
// returns the same handle.
func (f *File) importBufferObject(creds uuid.UUID) (*bo.Object, uint32, error) {
	obj, ok := f.dev.FindBufferObject(creds)
	if !ok {
		return nil, 0, NewError("importBufferObject", KindNotFound, "credential not registered")
	}
	if h, ok := f.getHandle(obj); ok {
		return obj, h, nil
	}
	return obj, f.createHandle(obj), nil
}

// postEvent appends ev to the pending queue, stamping its timestamp from
// now, incrementing the event sequence if the queue transitioned from
// empty to non-empty, updating the status page, and waking read/pollWait
// waiters.
func (f *File) postEvent(ev Event, nowNs int64) {
	ev.TimestampNs = nowNs

	f.mu.Lock()
	wasEmpty := len(f.queue) == 0
	f.queue = append(f.queue, ev)
	if wasEmpty {
		f.sequence++
	}
	f.writeStatusPageLocked()
	depth := len(f.queue)
	f.mu.Unlock()

	f.dev.observer.ObserveQueueDepth(uint32(depth))
	f.bellC.Raise()
}

// read pops one event and serializes it as a flip-complete record. On a
// non-blocking file with an empty queue it returns wouldBlock immediately;
// otherwise it waits on the bell until an event is posted or ctx is
// cancelled. buf must be at least uapi.RecordSize bytes.
func (f *File) read(ctx context.Context, buf []byte) (int, error) {
	if len(buf) < uapi.RecordSize {
		return 0, NewError("read", KindProtocol, "buffer shorter than record size")
	}

	for {
		f.mu.Lock()
		if len(f.queue) > 0 {
			ev := f.queue[0]
			f.queue = f.queue[1:]
			if len(f.queue) == 0 {
				f.writeStatusPageLocked()
			}
			f.mu.Unlock()
			f.dev.observer.ObserveRead(false)
			return f.encodeEvent(ev, buf), nil
		}
		if !f.blocking {
			f.mu.Unlock()
			f.dev.observer.ObserveRead(true)
			return 0, NewError("read", KindWouldBlock, "queue empty")
		}
		f.mu.Unlock()

		if err := f.bellC.Wait(ctx); err != nil {
			return 0, err
		}
	}
}

func (f *File) encodeEvent(ev Event, buf []byte) int {
	rec := uapi.FlipCompleteRecord{
		Type:     uapi.RecordFlipComplete,
		Length:   uapi.RecordSize,
		UserData: ev.Cookie,
		TvSec:    uint32(ev.TimestampNs / 1e9),
		TvUsec:   uint32((ev.TimestampNs % 1e9) / 1e3),
		CrtcID:   ev.CrtcID,
	}
	out, _ := uapi.Marshal(&rec)
	return copy(buf, out)
}

// pollWait suspends while sequence equals the file's current sequence,
// returning once it advances or ctx is cancelled — cancellation resolves
// with the current (sequence, mask) rather than an error, per spec.md §5.
func (f *File) pollWait(ctx context.Context, sequence uint64) (uint64, uint32, error) {
	f.mu.Lock()
	current := f.sequence
	f.mu.Unlock()

	if sequence > current {
		return 0, 0, NewError("pollWait", KindInvalidArgument, "sequence is in the future")
	}

	for sequence == current {
		if err := f.bellC.Wait(ctx); err != nil {
			break // cancelled: resolve with the current status below
		}
		f.mu.Lock()
		current = f.sequence
		f.mu.Unlock()
	}

	seq, readable := f.pollStatus()
	var mask uint32
	if readable {
		mask = uapi.StatusReadable
	}
	return seq, mask, nil
}

// pollStatus returns the current (sequence, readable) without blocking.
func (f *File) pollStatus() (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sequence, len(f.queue) > 0
}

func (f *File) maskLocked() uint32 {
	if len(f.queue) > 0 {
		return uapi.StatusReadable
	}
	return 0
}

func (f *File) writeStatusPageLocked() {
	page := uapi.StatusPage{Sequence: f.sequence, Mask: f.maskLocked()}
	out, _ := uapi.Marshal(&page)
	copy(f.statusPage.Bytes(), out)
}
