package memdrv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drmcore "github.com/vellum-os/drmcore"
)

func TestDriverCommitsTouchedCrtcs(t *testing.T) {
	dev := drmcore.NewDevice()
	crtcObj := dev.RegisterCrtc()
	modeProp, _ := dev.FindProperty("MODE_ID")
	activeProp, _ := dev.FindProperty("ACTIVE")

	modeInfo := validModeInfo()
	blobID := dev.RegisterBlob(modeInfo)

	driver := NewDriver()
	assignments := []drmcore.Assignment{
		{Target: crtcObj, Property: modeProp, Value: drmcore.Value{BlobID: blobID}},
		{Target: crtcObj, Property: activeProp, Value: drmcore.Value{Int: 1}},
	}

	_, err := dev.Commit(assignments, driver, false, nil)
	require.NoError(t, err)

	rec, ok := driver.Record(crtcObj.ID)
	require.True(t, ok, "expected a committed record for the CRTC")
	assert.True(t, rec.Active)
	assert.Equal(t, blobID, rec.ModeBlob)
}

func TestDriverRecordMissingCrtc(t *testing.T) {
	driver := NewDriver()
	_, ok := driver.Record(999)
	assert.False(t, ok, "expected no record for an untouched CRTC")
}

// validModeInfo returns a 1920x1080-shaped mode-info blob satisfying the
// MODE_ID timing-chain invariant.
func validModeInfo() []byte {
	return encodeModeInfo(148500, 1920, 2008, 2052, 2200, 0, 1080, 1084, 1089, 1125, 0)
}

func encodeModeInfo(clockKHz uint32, hd, hss, hse, ht, hskew uint16, vd, vss, vse, vt, vscan uint16) []byte {
	buf := make([]byte, 64)
	putU32 := func(off int, v uint32) {
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
	putU16 := func(off int, v uint16) {
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	putU32(0, clockKHz)
	putU16(4, hd)
	putU16(6, hss)
	putU16(8, hse)
	putU16(10, ht)
	putU16(12, hskew)
	putU16(14, vd)
	putU16(16, vss)
	putU16(18, vse)
	putU16(20, vt)
	putU16(22, vscan)
	return buf
}
