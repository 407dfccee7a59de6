package drmcore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-os/drmcore/internal/bo"
)

func TestObjectRegistryRoundTrip(t *testing.T) {
	dev := NewDevice()
	crtc := dev.RegisterCrtc()
	enc := dev.RegisterEncoder(1, []uint32{crtc.ID}, nil)
	conn := dev.RegisterConnector(2, 400, 300, []uint32{enc.ID})
	plane := dev.RegisterPlane(PlaneTypePrimary, []uint32{crtc.ID})
	fb := dev.RegisterFrameBuffer(1920, 1080, 7680, 0x34325258)

	for _, obj := range []*ModeObject{crtc, enc, conn, plane, fb} {
		got, ok := dev.FindObject(obj.ID)
		require.Truef(t, ok, "FindObject(%d) missing", obj.ID)
		assert.Equal(t, obj.Type, got.Type)
	}
}

func TestObjectDestroy(t *testing.T) {
	dev := NewDevice()
	crtc := dev.RegisterCrtc()
	dev.DestroyObject(crtc.ID)
	_, ok := dev.FindObject(crtc.ID)
	assert.False(t, ok, "FindObject should miss after DestroyObject")
}

func TestBlobLifecycle(t *testing.T) {
	dev := NewDevice()
	data := []byte("some mode blob")
	id := dev.RegisterBlob(data)

	got, ok := dev.FindBlob(id)
	require.True(t, ok)
	assert.Equal(t, data, got)

	assert.True(t, dev.DeleteBlob(id), "first DeleteBlob should succeed")
	assert.False(t, dev.DeleteBlob(id), "second DeleteBlob of the same ID should fail")
	_, ok = dev.FindBlob(id)
	assert.False(t, ok, "FindBlob should miss after delete")
}

func TestObjectAndBlobIDsShareAllocator(t *testing.T) {
	dev := NewDevice()
	crtc := dev.RegisterCrtc()
	blobID := dev.RegisterBlob([]byte("x"))
	assert.NotEqual(t, blobID, crtc.ID, "object and blob IDs should be drawn from the same non-colliding allocator")
}

func TestBufferObjectExportImportRoundTrip(t *testing.T) {
	dev := NewDevice()
	exporter, err := NewFile(dev, true)
	require.NoError(t, err)
	importer, err := NewFile(dev, true)
	require.NoError(t, err)

	obj := &bo.Object{Size: 4096}
	handle := exporter.createHandle(obj)

	creds := uuid.New()
	require.NoError(t, exporter.exportBufferObject(handle, creds))

	importedObj, h1, err := importer.importBufferObject(creds)
	require.NoError(t, err)
	assert.Same(t, obj, importedObj, "imported BO should be the same object the exporter registered")

	_, h2, err := importer.importBufferObject(creds)
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "re-importing the same credential should return the same handle")
}

func TestBufferObjectImportUnknownCredential(t *testing.T) {
	dev := NewDevice()
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	_, _, err = file.importBufferObject(uuid.New())
	require.Error(t, err, "importing an unregistered credential should fail")
	assert.True(t, IsKind(err, KindNotFound))
}

func TestExportUnresolvedHandleFails(t *testing.T) {
	dev := NewDevice()
	file, err := NewFile(dev, true)
	require.NoError(t, err)

	err = file.exportBufferObject(999, uuid.New())
	require.Error(t, err, "exporting an unresolved handle should fail")
	assert.True(t, IsKind(err, KindNotFound))
}

func TestBufferObjectSizeInvariantRejected(t *testing.T) {
	dev := NewDevice()
	oversized := &bo.Object{Size: uint64(MaxBufferObjectSize) + 1}

	err := dev.RegisterBufferObject(oversized, uuid.New())
	require.Error(t, err, "a BO exceeding the 2^32 invariant should be rejected")
	assert.True(t, IsKind(err, KindFatal))

	_, err = dev.InstallMapping(oversized)
	require.Error(t, err, "InstallMapping should reject the same oversized BO")
	assert.True(t, IsKind(err, KindFatal))
}
