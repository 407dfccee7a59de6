// Package uapi holds the wire-level record layouts and constants of the
// lane file protocol: request/response message types, the flip-complete
// record, the status page, the mode-info record, and the FourCC table.
package uapi

// Lane request message types (see DEV_OPEN / OPEN_FD_LANE).
const (
	ReqDevOpen    uint32 = 0x01
	ReqOpenFDLane uint32 = 0x02
	ReqRead       uint32 = 0x10
	ReqAccessMem  uint32 = 0x11
	ReqIoctl      uint32 = 0x12
	ReqPollWait   uint32 = 0x13
	ReqPollStatus uint32 = 0x14
)

// DEV_OPEN flags.
const (
	OpenFlagNonblock uint32 = 1 << 0
)

// DEV_OPEN response capability bits.
const (
	CapStatusPage uint32 = 1 << 0
	CapPosixLane  uint32 = 1 << 1
)

// Read-record type tags.
const (
	RecordFlipComplete uint32 = 0x01
)

// Status page mask bits.
const (
	StatusReadable uint32 = 1 << 0
)

// ModeInfoNameLen is the fixed length of a mode-info record's name field.
const ModeInfoNameLen = 32

// Fourcc is a four-character pixel format code, per the cross-OS DRM FourCC
// convention.
type Fourcc uint32

func fourcc(a, b, c, d byte) Fourcc {
	return Fourcc(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// The legacy (bpp, depth) -> fourcc table from convertLegacyFormat.
var (
	FourccC8         = fourcc('C', '8', ' ', ' ')
	FourccXRGB1555   = fourcc('X', 'R', '1', '5')
	FourccRGB565     = fourcc('R', 'G', '1', '6')
	FourccRGB888     = fourcc('R', 'G', '2', '4')
	FourccXRGB8888   = fourcc('X', 'R', '2', '4')
	FourccXRGB2101010 = fourcc('X', 'R', '3', '0')
	FourccARGB8888   = fourcc('A', 'R', '2', '4')
)
