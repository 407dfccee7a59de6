package drmcore

import (
	"sync"
	"time"
)

// AtomicState lazily forks per-object sub-states on first touch from the
// current committed states (copy-on-write by object ID). Only touched
// sub-states are ever materialized; everything else stays aliased to the
// live Device state until Submit installs the touched set.
type AtomicState struct {
	dev *Device

	mu         sync.Mutex
	crtcs      map[uint32]*CrtcState
	planes     map[uint32]*PlaneState
	connectors map[uint32]*ConnectorState

	testOnly bool
}

func newAtomicState(dev *Device) *AtomicState {
	return &AtomicState{
		dev:        dev,
		crtcs:      make(map[uint32]*CrtcState),
		planes:     make(map[uint32]*PlaneState),
		connectors: make(map[uint32]*ConnectorState),
	}
}

// Crtc returns id's mutable sub-state within this transaction, cloning
// from the object's live state on first touch. Touching the same id twice
// returns the same pointer.
func (s *AtomicState) Crtc(id uint32) *CrtcState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.crtcs[id]; ok {
		return st
	}
	st := s.dev.liveCrtcState(id).clone()
	st.owner = ObjectRef{Device: s.dev, ID: id}
	s.crtcs[id] = st
	return st
}

// Plane returns id's mutable sub-state within this transaction; see Crtc.
func (s *AtomicState) Plane(id uint32) *PlaneState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.planes[id]; ok {
		return st
	}
	st := s.dev.livePlaneState(id).clone()
	st.owner = ObjectRef{Device: s.dev, ID: id}
	s.planes[id] = st
	return st
}

// Connector returns id's mutable sub-state within this transaction; see
// Crtc.
func (s *AtomicState) Connector(id uint32) *ConnectorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.connectors[id]; ok {
		return st
	}
	st := s.dev.liveConnectorState(id).clone()
	st.owner = ObjectRef{Device: s.dev, ID: id}
	s.connectors[id] = st
	return st
}

// TouchedCrtcs returns the IDs of CRTCs this transaction has forked state
// for, used by Submit to decide which files to post flip events to.
func (s *AtomicState) TouchedCrtcs() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uint32, 0, len(s.crtcs))
	for id := range s.crtcs {
		ids = append(ids, id)
	}
	return ids
}

// Configuration is the driver-supplied commit executor: it inspects an
// AtomicState, decides feasibility, and schedules asynchronous hardware
// programming.
type Configuration interface {
	// Capture inspects state and returns whether the device accepts it.
	// Capture must answer synchronously; test-only transactions call only
	// Capture and never mutate visible state.
	Capture(state *AtomicState) bool

	// Commit begins asynchronous hardware programming for a previously
	// captured state. Commit is only called after Capture returned true.
	Commit(state *AtomicState)

	// WaitForCompletion returns a channel closed once the most recent
	// Commit has finished programming hardware.
	WaitForCompletion() <-chan struct{}
}

// FlipRequest registers interest in a flip-complete event for crtc,
// delivered to file with cookie once the commit touching crtc finishes.
type FlipRequest struct {
	CrtcID uint32
	File   *File
	Cookie uint64
}

// Apply runs the validate/writeToState half of the prepare-validate-commit
// protocol: every assignment's property.validate is checked before any
// writeToState mutates state, so a rejected assignment never partially
// applies.
func (d *Device) Apply(state *AtomicState, assignments []Assignment) error {
	for _, a := range assignments {
		if !a.Property.validate(d, a.Target, a.Value) {
			return NewObjectError("Apply", KindInvalidArgument, a.Target.ID,
				"assignment failed validation for property "+a.Property.Name)
		}
	}
	for _, a := range assignments {
		a.Property.writeToState(d, a.Target, a.Value, state)
	}
	return nil
}

// Submit runs the submit half of the protocol: cfg.Capture decides
// feasibility synchronously; on acceptance of a non-test transaction, the
// device serializes commit against any other in-flight Submit, waits for
// cfg to finish, installs the touched sub-states atomically, and posts a
// flip event to every matching FlipRequest.
func (d *Device) Submit(state *AtomicState, cfg Configuration, testOnly bool, flips []FlipRequest) error {
	d.commitMu.Lock()
	defer d.commitMu.Unlock()

	start := time.Now()
	accepted := cfg.Capture(state)
	d.observer.ObserveCommit(uint64(time.Since(start)), accepted, testOnly)

	if !accepted {
		return NewError("Submit", KindInvalidArgument, "configuration rejected state")
	}
	if testOnly {
		return nil
	}

	cfg.Commit(state)
	<-cfg.WaitForCompletion()

	d.installState(state)

	touched := make(map[uint32]bool)
	for _, id := range state.TouchedCrtcs() {
		touched[id] = true
	}
	now := d.now()
	for _, req := range flips {
		if touched[req.CrtcID] {
			req.File.postEvent(Event{Cookie: req.Cookie, CrtcID: req.CrtcID}, now)
			d.observer.ObserveFlip()
		}
	}
	return nil
}
