package uapi

import "unsafe"

// ModeInfo is the fixed-size mode-info record stored as a MODE_ID blob's
// payload. Field order matches spec.md's description: clock, h-timings,
// v-timings, flags, type, name.
type ModeInfo struct {
	ClockKHz uint32

	HDisplay   uint16
	HSyncStart uint16
	HSyncEnd   uint16
	HTotal     uint16
	HSkew      uint16

	VDisplay   uint16
	VSyncStart uint16
	VSyncEnd   uint16
	VTotal     uint16
	VScan      uint16

	Flags uint32
	Type  uint32

	Name [ModeInfoNameLen]byte
}

// Compile-time size check: 4 + 5*2 + 5*2 + 4 + 4 + 32 = 64 bytes.
var _ [64]byte = [unsafe.Sizeof(ModeInfo{})]byte{}

// ModeInfoSize is the canonical size of a ModeInfo on the wire; a MODE_ID
// blob must match it exactly.
const ModeInfoSize = 64

// FlipCompleteRecord is the record returned by File.read, per spec.md §6.
type FlipCompleteRecord struct {
	Type     uint32
	Length   uint32
	UserData uint64
	TvSec    uint32
	TvUsec   uint32
	CrtcID   uint32
}

// Compile-time size check: 4+4+8+4+4+4 = 28 bytes of fields, measured to
// the end of the last field (unsafe.Sizeof would include the trailing
// padding Go adds for the uint64's alignment).
var _ [28]byte = [unsafe.Offsetof(FlipCompleteRecord{}.CrtcID) + unsafe.Sizeof(FlipCompleteRecord{}.CrtcID)]byte{}

// RecordSize is the canonical size of a FlipCompleteRecord on the wire.
const RecordSize = 28

// StatusPage is the shared-memory layout exposing the event sequence
// counter and the readable mask to clients.
type StatusPage struct {
	Sequence uint64
	Mask     uint32
}

// Compile-time size check: 8+4 = 12 bytes of fields, measured to the end of
// the last field (excluding trailing alignment padding).
var _ [12]byte = [unsafe.Offsetof(StatusPage{}.Mask) + unsafe.Sizeof(StatusPage{}.Mask)]byte{}

// StatusPageSize is the canonical size of a StatusPage on the wire.
const StatusPageSize = 12

// DevOpenRequest is the request payload for ReqDevOpen.
type DevOpenRequest struct {
	Flags uint32
}

// DevOpenResponse is the response payload for ReqDevOpen.
type DevOpenResponse struct {
	Error uint32
	Caps  uint32
}
