package drmcore

import (
	"context"

	"github.com/vellum-os/drmcore/internal/memio"
	"github.com/vellum-os/drmcore/internal/uapi"
)

// Lane is the minimal surface the Lane Server needs from a kernel
// message-passing lane: pushing a freshly created sub-lane or a memory
// region, and receiving a pulled descriptor. Responses are returned by the
// handler methods rather than posted through this interface.
// The kernel IPC primitives themselves are out of scope per spec.md §1;
// this interface is the seam a real lane transport implements.
type Lane interface {
	PushSubLane(sub Lane) error
	PushMemory(region *memio.Region) error
	PullDescriptor() (fd uintptr, err error)
}

// LaneServer dispatches DEV_OPEN/OPEN_FD_LANE on a device-scoped lane, and
// routes each opened File's requests through the file-operations table.
type LaneServer struct {
	dev *Device

	fdLane uintptr // last descriptor received via OPEN_FD_LANE, for credential introspection
}

// NewLaneServer returns a server for lane requests against dev.
func NewLaneServer(dev *Device) *LaneServer {
	return &LaneServer{dev: dev}
}

// HandleDevOpen implements DEV_OPEN: recognized flags = {NONBLOCK}, any
// other bit set is a protocol-level invalidArgument. It creates a fresh
// File, pushes it as a new sub-lane, and pushes the File's status-page
// memory.
func (s *LaneServer) HandleDevOpen(lane Lane, subLane Lane, flags uint32) (*File, uint32, error) {
	if flags&^uapi.OpenFlagNonblock != 0 {
		return nil, 0, NewError("DEV_OPEN", KindInvalidArgument, "unrecognized open flags")
	}

	blocking := flags&uapi.OpenFlagNonblock == 0
	file, err := NewFile(s.dev, blocking)
	if err != nil {
		return nil, 0, err
	}

	if err := lane.PushSubLane(subLane); err != nil {
		return nil, 0, err
	}
	if err := lane.PushMemory(file.StatusPage()); err != nil {
		return nil, 0, err
	}

	caps := uapi.CapStatusPage | uapi.CapPosixLane
	return file, caps, nil
}

// HandleOpenFDLane implements OPEN_FD_LANE: one-shot reception of a POSIX
// lane descriptor, stored for later credential introspection.
func (s *LaneServer) HandleOpenFDLane(lane Lane) error {
	fd, err := lane.PullDescriptor()
	if err != nil {
		return NewError("OPEN_FD_LANE", KindProtocol, "failed to pull descriptor")
	}
	s.fdLane = fd
	return nil
}

// Dispatch routes a per-File request by its wire request-type tag. Unknown
// types are a protocol error, per spec.md §4.5.
func (s *LaneServer) Dispatch(ctx context.Context, file *File, reqType uint32, payload []byte) (response []byte, err error) {
	switch reqType {
	case uapi.ReqRead:
		buf := make([]byte, uapi.RecordSize)
		n, err := file.read(ctx, buf)
		if err != nil {
			return nil, err
		}
		return buf[:n], nil

	case uapi.ReqAccessMem:
		if len(payload) < 4 {
			return nil, NewError("accessMemory", KindProtocol, "truncated request")
		}
		slot := le32(payload)
		region, ok := file.AccessMemory(slot)
		if !ok {
			return nil, NewError("accessMemory", KindNotFound, "slot not published")
		}
		return region.Bytes(), nil

	case uapi.ReqPollWait:
		if len(payload) < 8 {
			return nil, NewError("pollWait", KindProtocol, "truncated request")
		}
		sequence := le64(payload)
		seq, mask, err := file.pollWait(ctx, sequence)
		if err != nil {
			return nil, err
		}
		return encodeSeqMask(seq, mask), nil

	case uapi.ReqPollStatus:
		seq, readable := file.pollStatus()
		mask := uint32(0)
		if readable {
			mask = uapi.StatusReadable
		}
		return encodeSeqMask(seq, mask), nil

	case uapi.ReqIoctl:
		// The device-specific DRM request surface is not specified by
		// spec.md §4.5; routing lives in the driver layer above this
		// server.
		return nil, NewError("ioctl", KindProtocol, "ioctl surface not implemented by the core")

	default:
		return nil, NewError("Dispatch", KindProtocol, "unknown request type")
	}
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func le64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func encodeSeqMask(seq uint64, mask uint32) []byte {
	page := uapi.StatusPage{Sequence: seq, Mask: mask}
	out, _ := uapi.Marshal(&page)
	return out
}
