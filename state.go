package drmcore

// ObjectRef is the weak back-reference a sub-state keeps to its owning Mode
// Object: looking it up never extends the object's lifetime.
type ObjectRef struct {
	Device *Device
	ID     uint32
}

// Resolve follows the weak reference, returning false if the object has
// since been destroyed.
func (r ObjectRef) Resolve() (*ModeObject, bool) {
	if r.Device == nil {
		return nil, false
	}
	return r.Device.FindObject(r.ID)
}

// CrtcState is a Crtc's mutable per-transaction sub-state: active flag,
// the mode blob reference, and the derived modeChanged flag MODE_ID's
// writeToState sets.
type CrtcState struct {
	owner ObjectRef

	Active      bool
	Mode        uint32 // blob ID; 0 = none
	ModeChanged bool
}

func (s *CrtcState) clone() *CrtcState {
	c := *s
	return &c
}

// PlaneState is a Plane's mutable per-transaction sub-state: the assigned
// CRTC and bound FrameBuffer (both optional, 0 = none), the source
// rectangle in 16.16 fixed point (SrcW/SrcH already truncated to integer
// pixels per SRC_W/SRC_H's writeToState), and the destination rectangle in
// integer pixels.
type PlaneState struct {
	owner ObjectRef

	Crtc        uint32
	FrameBuffer uint32

	SrcX, SrcY int32 // 16.16 fixed-point, stored as-is
	SrcW, SrcH int32 // integer pixels (value >> 16 at write)

	CrtcX, CrtcY, CrtcW, CrtcH int32
}

func (s *PlaneState) clone() *PlaneState {
	c := *s
	return &c
}

// DpmsState is a Connector's power-management state.
type DpmsState int

const (
	DpmsOn DpmsState = iota
	DpmsStandby
	DpmsSuspend
	DpmsOff
)

// ConnectorState is a Connector's mutable per-transaction sub-state: DPMS
// power state and the assigned CRTC (optional, 0 = none).
type ConnectorState struct {
	owner ObjectRef

	Dpms DpmsState
	Crtc uint32
}

func (s *ConnectorState) clone() *ConnectorState {
	c := *s
	return &c
}
