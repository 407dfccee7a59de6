// Package constants holds the mode-setting core's tunable defaults,
// mirrored at the root package as re-exports for API consumers.
package constants

// Default mode dimension clamps a Device starts with unless
// WithDimensionClamps overrides them.
const (
	// DefaultMinWidth and DefaultMinHeight are a Device's default
	// minimum mode dimensions.
	DefaultMinWidth  = 64
	DefaultMinHeight = 64

	// DefaultMaxWidth and DefaultMaxHeight are a Device's default
	// maximum mode dimensions — generous enough to admit every DMT table
	// entry.
	DefaultMaxWidth  = 4096
	DefaultMaxHeight = 2160
)

// MaxBufferObjectSize is the invariant bound on a BufferObject's size
// (spec.md §3: "BO size < 2^32").
const MaxBufferObjectSize = 1<<32 - 1
