package drmcore

import (
	"github.com/vellum-os/drmcore/internal/dmt"
	"github.com/vellum-os/drmcore/internal/uapi"
)

// legacyFormat is a (bpp, depth) pair as found in the legacy frame-buffer
// ioctl surface, before fourcc pixel formats existed.
type legacyFormat struct {
	bpp, depth uint32
}

var legacyToFourcc = map[legacyFormat]uapi.Fourcc{
	{bpp: 8, depth: 8}:   uapi.FourccC8,
	{bpp: 16, depth: 15}: uapi.FourccXRGB1555,
	{bpp: 16, depth: 16}: uapi.FourccRGB565,
	{bpp: 24, depth: 24}: uapi.FourccRGB888,
	{bpp: 32, depth: 24}: uapi.FourccXRGB8888,
	{bpp: 32, depth: 30}: uapi.FourccXRGB2101010,
	{bpp: 32, depth: 32}: uapi.FourccARGB8888,
}

var fourccToBpp = map[uapi.Fourcc]uint32{
	uapi.FourccC8:          8,
	uapi.FourccXRGB1555:    16,
	uapi.FourccRGB565:      16,
	uapi.FourccRGB888:      24,
	uapi.FourccXRGB8888:    32,
	uapi.FourccXRGB2101010: 32,
	uapi.FourccARGB8888:    32,
}

// convertLegacyFormat maps the documented (bpp, depth) pairs to their
// fourcc. Any other pair is a programming error upstream — never client
// input — so it reports fatal rather than invalidArgument, per spec.md
// §4.6/§7.
func convertLegacyFormat(bpp, depth uint32) (uapi.Fourcc, error) {
	f, ok := legacyToFourcc[legacyFormat{bpp: bpp, depth: depth}]
	if !ok {
		return 0, Fatal("convertLegacyFormat", "no fourcc for bpp/depth pair")
	}
	return f, nil
}

// getFormatInfo returns the bytes-per-pixel for one of the fourccs
// convertLegacyFormat produces.
func getFormatInfo(f uapi.Fourcc) (bytesPerPixel uint32, ok bool) {
	bpp, ok := fourccToBpp[f]
	if !ok {
		return 0, false
	}
	return bpp / 8, true
}

// addDmtModes appends every built-in DMT mode whose display resolution
// fits within maxW x maxH to sink.
func addDmtModes(sink []dmt.Mode, maxW, maxH uint16) []dmt.Mode {
	return append(sink, dmt.Filter(maxW, maxH)...)
}
