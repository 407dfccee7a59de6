// Package memdrv provides an in-memory reference Configuration: a driver
// that always captures and commits against process memory instead of real
// hardware, useful for tests and for cmd/drmd's demo mode.
package memdrv

import (
	"sync"

	drmcore "github.com/vellum-os/drmcore"
)

// CrtcRecord is the committed geometry memdrv stores for one CRTC.
type CrtcRecord struct {
	Active   bool
	ModeBlob uint32
}

// Driver is a Configuration that accepts every capture and, on Commit,
// stores each touched CRTC's committed state keyed by CRTC ID. A single
// RWMutex guards the whole record map; a mode-setting commit touches only
// a handful of CRTCs.
type Driver struct {
	mu      sync.RWMutex
	records map[uint32]CrtcRecord

	completionMu sync.Mutex
	done         chan struct{}
}

// NewDriver returns a Driver with no committed CRTCs.
func NewDriver() *Driver {
	d := &Driver{
		records: make(map[uint32]CrtcRecord),
		done:    make(chan struct{}),
	}
	close(d.done)
	return d
}

// Capture always accepts: memdrv has no hardware feasibility constraints
// to reject against.
func (d *Driver) Capture(*drmcore.AtomicState) bool {
	return true
}

// Commit stores each touched CRTC's committed active/mode state, then
// signals completion.
func (d *Driver) Commit(state *drmcore.AtomicState) {
	d.completionMu.Lock()
	done := make(chan struct{})
	d.done = done
	d.completionMu.Unlock()

	for _, id := range state.TouchedCrtcs() {
		st := state.Crtc(id)
		d.mu.Lock()
		d.records[id] = CrtcRecord{Active: st.Active, ModeBlob: st.Mode}
		d.mu.Unlock()
	}

	close(done)
}

// WaitForCompletion returns the channel closed once the most recent
// Commit finished storing its records.
func (d *Driver) WaitForCompletion() <-chan struct{} {
	d.completionMu.Lock()
	defer d.completionMu.Unlock()
	return d.done
}

// Record returns the last committed state for crtcID, if any.
func (d *Driver) Record(crtcID uint32) (CrtcRecord, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, ok := d.records[crtcID]
	return r, ok
}

var _ drmcore.Configuration = (*Driver)(nil)
