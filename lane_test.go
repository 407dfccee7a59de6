package drmcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-os/drmcore/internal/uapi"
)

func TestHandleDevOpenRejectsUnknownFlags(t *testing.T) {
	dev := NewDevice()
	server := NewLaneServer(dev)
	lane := NewMockLane(1)
	sub := NewMockLane(2)

	_, _, err := server.HandleDevOpen(lane, sub, 0xdead0000)
	require.Error(t, err, "unrecognized open flags should fail")
	assert.True(t, IsKind(err, KindInvalidArgument))
}

func TestHandleDevOpenPushesSubLaneAndStatusPage(t *testing.T) {
	dev := NewDevice()
	server := NewLaneServer(dev)
	lane := NewMockLane(1)
	sub := NewMockLane(2)

	file, caps, err := server.HandleDevOpen(lane, sub, 0)
	require.NoError(t, err)
	assert.NotZero(t, caps&uapi.CapStatusPage)
	assert.NotZero(t, caps&uapi.CapPosixLane)

	require.Len(t, lane.PushedSubLanes(), 1)
	assert.Equal(t, Lane(sub), lane.PushedSubLanes()[0])
	require.Len(t, lane.PushedRegions(), 1)
	assert.Equal(t, file.StatusPage(), lane.PushedRegions()[0])
}

func TestHandleDevOpenNonblockFlag(t *testing.T) {
	dev := NewDevice()
	server := NewLaneServer(dev)
	lane := NewMockLane(1)
	sub := NewMockLane(2)

	file, _, err := server.HandleDevOpen(lane, sub, uapi.OpenFlagNonblock)
	require.NoError(t, err)
	assert.False(t, file.blocking, "NONBLOCK flag should produce a non-blocking file")
}

func TestDispatchUnknownRequestType(t *testing.T) {
	dev := NewDevice()
	server := NewLaneServer(dev)
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	_, err = server.Dispatch(context.Background(), file, 0xffffffff, nil)
	require.Error(t, err, "an unknown request type should fail")
	assert.True(t, IsKind(err, KindProtocol))
}

func TestDispatchIoctlNotImplemented(t *testing.T) {
	dev := NewDevice()
	server := NewLaneServer(dev)
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	_, err = server.Dispatch(context.Background(), file, uapi.ReqIoctl, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindProtocol))
}

func TestDispatchPollStatusEmpty(t *testing.T) {
	dev := NewDevice()
	server := NewLaneServer(dev)
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	resp, err := server.Dispatch(context.Background(), file, uapi.ReqPollStatus, nil)
	require.NoError(t, err)
	var page uapi.StatusPage
	require.NoError(t, uapi.Unmarshal(resp, &page))
	assert.Zero(t, page.Sequence)
	assert.Zero(t, page.Mask)
}

func TestDispatchAccessMemUnpublishedSlot(t *testing.T) {
	dev := NewDevice()
	server := NewLaneServer(dev)
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	payload := []byte{7, 0, 0, 0}
	_, err = server.Dispatch(context.Background(), file, uapi.ReqAccessMem, payload)
	require.Error(t, err, "an unpublished slot should fail")
	assert.True(t, IsKind(err, KindNotFound))
}
