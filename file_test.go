package drmcore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-os/drmcore/internal/uapi"
)

func TestNonBlockingReadWouldBlockThenDelivers(t *testing.T) {
	dev := NewDevice()
	file, err := NewFile(dev, false)
	require.NoError(t, err)

	buf := make([]byte, uapi.RecordSize)
	_, err = file.read(context.Background(), buf)
	require.Error(t, err, "read against an empty queue should fail")
	assert.True(t, IsKind(err, KindWouldBlock))

	file.postEvent(Event{Cookie: 7, CrtcID: 1}, 1000)

	n, err := file.read(context.Background(), buf)
	require.NoError(t, err)
	var rec uapi.FlipCompleteRecord
	require.NoError(t, uapi.Unmarshal(buf[:n], &rec))
	assert.EqualValues(t, 7, rec.UserData)
	assert.EqualValues(t, 1, rec.CrtcID)

	seq, readable := file.pollStatus()
	assert.False(t, readable, "the queue should be empty (and unreadable) after the single event was read")
	assert.NotZero(t, seq, "sequence should have advanced past 0 once an event was posted")
}

func TestEventQueueFIFOAndTimestampOrdering(t *testing.T) {
	dev := NewDevice()
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	file.postEvent(Event{Cookie: 1, CrtcID: 1}, 100)
	file.postEvent(Event{Cookie: 2, CrtcID: 1}, 200)
	file.postEvent(Event{Cookie: 3, CrtcID: 1}, 300)

	buf := make([]byte, uapi.RecordSize)
	var lastTv int64 = -1
	for _, want := range []uint64{1, 2, 3} {
		n, err := file.read(context.Background(), buf)
		require.NoError(t, err)
		var rec uapi.FlipCompleteRecord
		require.NoError(t, uapi.Unmarshal(buf[:n], &rec))
		assert.Equalf(t, want, rec.UserData, "FIFO order")
		tv := int64(rec.TvSec)*1e9 + int64(rec.TvUsec)*1e3
		assert.GreaterOrEqual(t, tv, lastTv, "event timestamps should not go backwards")
		lastTv = tv
	}
}

func TestStatusPageMaskTogglesWithQueue(t *testing.T) {
	dev := NewDevice()
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	var page uapi.StatusPage
	require.NoError(t, uapi.Unmarshal(file.StatusPage().Bytes(), &page))
	assert.Zero(t, page.Mask&uapi.StatusReadable, "mask should be clear before any event is posted")

	file.postEvent(Event{Cookie: 1, CrtcID: 1}, 1)
	require.NoError(t, uapi.Unmarshal(file.StatusPage().Bytes(), &page))
	assert.NotZero(t, page.Mask&uapi.StatusReadable, "mask should set StatusReadable once an event is queued")

	buf := make([]byte, uapi.RecordSize)
	_, err = file.read(context.Background(), buf)
	require.NoError(t, err)
	require.NoError(t, uapi.Unmarshal(file.StatusPage().Bytes(), &page))
	assert.Zero(t, page.Mask&uapi.StatusReadable, "mask should clear once the queue drains")
}

func TestPollWaitCancellationResolvesWithCurrentStatus(t *testing.T) {
	dev := NewDevice()
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	seq, mask, err := file.pollWait(ctx, 0)
	require.NoError(t, err, "pollWait cancellation should resolve without error")
	assert.Zero(t, seq)
	assert.Zero(t, mask)
}

func TestPollWaitFutureSequenceRejected(t *testing.T) {
	dev := NewDevice()
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	_, _, err = file.pollWait(context.Background(), 5)
	require.Error(t, err, "a sequence ahead of current should fail")
	assert.True(t, IsKind(err, KindInvalidArgument))
}

func TestReadRejectsShortBuffer(t *testing.T) {
	dev := NewDevice()
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	_, err = file.read(context.Background(), make([]byte, 2))
	require.Error(t, err, "a short buffer should fail")
	assert.True(t, IsKind(err, KindProtocol))
}

func TestFrameBufferAttachDetach(t *testing.T) {
	dev := NewDevice()
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	file.AttachFrameBuffer(9)
	assert.True(t, file.DetachFrameBuffer(9), "DetachFrameBuffer should succeed for an attached FB")
	assert.False(t, file.DetachFrameBuffer(9), "a second DetachFrameBuffer of the same ID should fail")
}
