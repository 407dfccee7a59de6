package uapi

import "encoding/binary"

// MarshalError is a string-valued error type for wire-marshal failures,
// mirroring the teacher's MarshalError convention.
type MarshalError string

func (e MarshalError) Error() string { return string(e) }

const (
	ErrInsufficientData MarshalError = "insufficient data for unmarshaling"
	ErrInvalidType      MarshalError = "invalid type for marshaling"
)

// Marshal converts a known wire struct to its little-endian byte encoding.
func Marshal(v interface{}) ([]byte, error) {
	switch val := v.(type) {
	case *ModeInfo:
		return marshalModeInfo(val), nil
	case *FlipCompleteRecord:
		return marshalFlipComplete(val), nil
	case *StatusPage:
		return marshalStatusPage(val), nil
	default:
		return nil, ErrInvalidType
	}
}

// Unmarshal decodes a known wire struct from its little-endian encoding.
func Unmarshal(data []byte, v interface{}) error {
	switch val := v.(type) {
	case *ModeInfo:
		return unmarshalModeInfo(data, val)
	case *FlipCompleteRecord:
		return unmarshalFlipComplete(data, val)
	case *StatusPage:
		return unmarshalStatusPage(data, val)
	default:
		return ErrInvalidType
	}
}

func marshalModeInfo(m *ModeInfo) []byte {
	buf := make([]byte, 64)
	binary.LittleEndian.PutUint32(buf[0:4], m.ClockKHz)
	binary.LittleEndian.PutUint16(buf[4:6], m.HDisplay)
	binary.LittleEndian.PutUint16(buf[6:8], m.HSyncStart)
	binary.LittleEndian.PutUint16(buf[8:10], m.HSyncEnd)
	binary.LittleEndian.PutUint16(buf[10:12], m.HTotal)
	binary.LittleEndian.PutUint16(buf[12:14], m.HSkew)
	binary.LittleEndian.PutUint16(buf[14:16], m.VDisplay)
	binary.LittleEndian.PutUint16(buf[16:18], m.VSyncStart)
	binary.LittleEndian.PutUint16(buf[18:20], m.VSyncEnd)
	binary.LittleEndian.PutUint16(buf[20:22], m.VTotal)
	binary.LittleEndian.PutUint16(buf[22:24], m.VScan)
	binary.LittleEndian.PutUint32(buf[24:28], m.Flags)
	binary.LittleEndian.PutUint32(buf[28:32], m.Type)
	copy(buf[32:64], m.Name[:])
	return buf
}

func unmarshalModeInfo(data []byte, m *ModeInfo) error {
	if len(data) < 64 {
		return ErrInsufficientData
	}
	m.ClockKHz = binary.LittleEndian.Uint32(data[0:4])
	m.HDisplay = binary.LittleEndian.Uint16(data[4:6])
	m.HSyncStart = binary.LittleEndian.Uint16(data[6:8])
	m.HSyncEnd = binary.LittleEndian.Uint16(data[8:10])
	m.HTotal = binary.LittleEndian.Uint16(data[10:12])
	m.HSkew = binary.LittleEndian.Uint16(data[12:14])
	m.VDisplay = binary.LittleEndian.Uint16(data[14:16])
	m.VSyncStart = binary.LittleEndian.Uint16(data[16:18])
	m.VSyncEnd = binary.LittleEndian.Uint16(data[18:20])
	m.VTotal = binary.LittleEndian.Uint16(data[20:22])
	m.VScan = binary.LittleEndian.Uint16(data[22:24])
	m.Flags = binary.LittleEndian.Uint32(data[24:28])
	m.Type = binary.LittleEndian.Uint32(data[28:32])
	copy(m.Name[:], data[32:64])
	return nil
}

func marshalFlipComplete(r *FlipCompleteRecord) []byte {
	buf := make([]byte, RecordSize)
	binary.LittleEndian.PutUint32(buf[0:4], r.Type)
	binary.LittleEndian.PutUint32(buf[4:8], r.Length)
	binary.LittleEndian.PutUint64(buf[8:16], r.UserData)
	binary.LittleEndian.PutUint32(buf[16:20], r.TvSec)
	binary.LittleEndian.PutUint32(buf[20:24], r.TvUsec)
	binary.LittleEndian.PutUint32(buf[24:28], r.CrtcID)
	return buf
}

func unmarshalFlipComplete(data []byte, r *FlipCompleteRecord) error {
	if len(data) < RecordSize {
		return ErrInsufficientData
	}
	r.Type = binary.LittleEndian.Uint32(data[0:4])
	r.Length = binary.LittleEndian.Uint32(data[4:8])
	r.UserData = binary.LittleEndian.Uint64(data[8:16])
	r.TvSec = binary.LittleEndian.Uint32(data[16:20])
	r.TvUsec = binary.LittleEndian.Uint32(data[20:24])
	r.CrtcID = binary.LittleEndian.Uint32(data[24:28])
	return nil
}

func marshalStatusPage(p *StatusPage) []byte {
	buf := make([]byte, StatusPageSize)
	binary.LittleEndian.PutUint64(buf[0:8], p.Sequence)
	binary.LittleEndian.PutUint32(buf[8:12], p.Mask)
	return buf
}

func unmarshalStatusPage(data []byte, p *StatusPage) error {
	if len(data) < StatusPageSize {
		return ErrInsufficientData
	}
	p.Sequence = binary.LittleEndian.Uint64(data[0:8])
	p.Mask = binary.LittleEndian.Uint32(data[8:12])
	return nil
}
