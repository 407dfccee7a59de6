package drmcore

import (
	"github.com/vellum-os/drmcore/internal/dmt"
	"github.com/vellum-os/drmcore/internal/uapi"
)

// ObjectType tags the kind of a ModeObject. Every object carries a stable
// {id, type} header; per-kind payload hangs off the matching field below.
type ObjectType int

const (
	ObjectCrtc ObjectType = iota
	ObjectEncoder
	ObjectConnector
	ObjectPlane
	ObjectFrameBuffer
)

func (t ObjectType) String() string {
	switch t {
	case ObjectCrtc:
		return "Crtc"
	case ObjectEncoder:
		return "Encoder"
	case ObjectConnector:
		return "Connector"
	case ObjectPlane:
		return "Plane"
	case ObjectFrameBuffer:
		return "FrameBuffer"
	default:
		return "Unknown"
	}
}

// PlaneType is a Plane's fixed, immutable kind.
type PlaneType int

const (
	PlaneTypeOverlay PlaneType = iota
	PlaneTypePrimary
	PlaneTypeCursor
)

// ModeObject is the tagged variant over the five Mode Object kinds the
// source downcasts from a common base. Exactly one payload field is set,
// matching Type; As* below are the total-function downcasts.
type ModeObject struct {
	ID   uint32
	Type ObjectType

	crtc        *Crtc
	encoder     *Encoder
	connector   *Connector
	plane       *Plane
	framebuffer *FrameBuffer
}

// AsCrtc returns the Crtc payload and true iff o.Type == ObjectCrtc.
func (o *ModeObject) AsCrtc() (*Crtc, bool) {
	if o.Type != ObjectCrtc {
		return nil, false
	}
	return o.crtc, true
}

// AsEncoder returns the Encoder payload and true iff o.Type == ObjectEncoder.
func (o *ModeObject) AsEncoder() (*Encoder, bool) {
	if o.Type != ObjectEncoder {
		return nil, false
	}
	return o.encoder, true
}

// AsConnector returns the Connector payload and true iff o.Type == ObjectConnector.
func (o *ModeObject) AsConnector() (*Connector, bool) {
	if o.Type != ObjectConnector {
		return nil, false
	}
	return o.connector, true
}

// AsPlane returns the Plane payload and true iff o.Type == ObjectPlane.
func (o *ModeObject) AsPlane() (*Plane, bool) {
	if o.Type != ObjectPlane {
		return nil, false
	}
	return o.plane, true
}

// AsFrameBuffer returns the FrameBuffer payload and true iff o.Type == ObjectFrameBuffer.
func (o *ModeObject) AsFrameBuffer() (*FrameBuffer, bool) {
	if o.Type != ObjectFrameBuffer {
		return nil, false
	}
	return o.framebuffer, true
}

// Crtc is dense-indexed within its Device. Its mutable state lives in
// CrtcState, forked per transaction by AtomicState.
type Crtc struct {
	ID    uint32
	Index int
}

// Encoder has a current CRTC binding (0 = none, set outside AtomicState
// since encoder routing is not itself part of the atomic property surface
// spec.md defines), an encoder-type tag, and possible-CRTC/clone sets.
type Encoder struct {
	ID             uint32
	Index          int
	EncoderType    uint32
	PossibleCrtcs  map[uint32]bool
	PossibleClones map[uint32]bool
	CurrentCrtc    uint32
}

// ConnectionStatus mirrors a Connector's current detection state.
type ConnectionStatus int

const (
	ConnectionStatusUnknown ConnectionStatus = iota
	ConnectionStatusConnected
	ConnectionStatusDisconnected
)

// Connector has a connector-type, a physical size, a subpixel ordering, a
// cached supported-mode list, a detection status, a current encoder, and a
// possible-encoders set. Its mutable state lives in ConnectorState.
type Connector struct {
	ID               uint32
	ConnectorType    uint32
	PhysicalWidthMM  uint32
	PhysicalHeightMM uint32
	SubpixelOrder    uint32
	Status           ConnectionStatus
	CurrentEncoder   uint32
	PossibleEncoders map[uint32]bool
	SupportedModes   []dmt.Mode
}

// Plane has a fixed PlaneType and an advertised possibleCrtcs set; both are
// immutable for the object's lifetime. Its mutable state lives in
// PlaneState.
type Plane struct {
	ID            uint32
	Type          PlaneType
	PossibleCrtcs map[uint32]bool
}

// FrameBuffer is a Mode Object; concrete pixel storage is driver-defined,
// so only the geometry and pixel format live here (no backing BO is
// recorded).
type FrameBuffer struct {
	ID     uint32
	Width  uint32
	Height uint32
	Format uapi.Fourcc
	Pitch  uint32
}
