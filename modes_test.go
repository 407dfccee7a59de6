package drmcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-os/drmcore/internal/dmt"
)

func TestConvertLegacyFormatRoundTrip(t *testing.T) {
	cases := []struct{ bpp, depth uint32 }{
		{8, 8}, {16, 15}, {16, 16}, {24, 24}, {32, 24}, {32, 30}, {32, 32},
	}
	for _, c := range cases {
		f, err := convertLegacyFormat(c.bpp, c.depth)
		if !assert.NoErrorf(t, err, "convertLegacyFormat(%d, %d)", c.bpp, c.depth) {
			continue
		}
		bytesPerPixel, ok := getFormatInfo(f)
		if !assert.Truef(t, ok, "getFormatInfo(%v) missing for (%d, %d)", f, c.bpp, c.depth) {
			continue
		}
		assert.Equalf(t, c.bpp, bytesPerPixel*8, "(%d, %d) -> %v -> %d bytes/px", c.bpp, c.depth, f, bytesPerPixel)
	}
}

func TestConvertLegacyFormatUnknownPairIsFatal(t *testing.T) {
	_, err := convertLegacyFormat(17, 99)
	require.Error(t, err, "an unmapped (bpp, depth) pair should fail")
	assert.True(t, IsKind(err, KindFatal), "expected KindFatal for a programming-error input")
}

func TestGetFormatInfoUnknownFourcc(t *testing.T) {
	_, ok := getFormatInfo(0xdeadbeef)
	assert.False(t, ok, "an unregistered fourcc should miss")
}

func TestAddDmtModesFiltersByDimensions(t *testing.T) {
	modes := addDmtModes(nil, 1920, 1080)
	for _, m := range modes {
		assert.LessOrEqualf(t, m.HDisplay, uint16(1920), "mode %q exceeds the 1920-wide clamp", m.Name)
		assert.LessOrEqualf(t, m.VDisplay, uint16(1080), "mode %q exceeds the 1080-tall clamp", m.Name)
	}

	var found4k bool
	for _, m := range modes {
		if m.HDisplay == 4096 {
			found4k = true
		}
	}
	assert.False(t, found4k, "4096-wide modes should be filtered out at a 1920x1080 clamp")
}

func TestAddDmtModesFullTable(t *testing.T) {
	modes := addDmtModes(nil, 0xffff, 0xffff)
	assert.Len(t, modes, len(dmt.Table), "unbounded clamp should return the full table")
}

func TestAddDmtModesAppendsToExistingSink(t *testing.T) {
	seed := []dmt.Mode{{Name: "custom", HDisplay: 100, VDisplay: 100}}
	modes := addDmtModes(seed, 0xffff, 0xffff)
	require.Len(t, modes, 1+len(dmt.Table))
	assert.Equal(t, "custom", modes[0].Name, "seed entry should remain first")
}
