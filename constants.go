package drmcore

import (
	"github.com/vellum-os/drmcore/internal/constants"
	"github.com/vellum-os/drmcore/internal/memio"
)

// Re-exported tunable defaults.
const (
	DefaultMinWidth  = constants.DefaultMinWidth
	DefaultMinHeight = constants.DefaultMinHeight
	DefaultMaxWidth  = constants.DefaultMaxWidth
	DefaultMaxHeight = constants.DefaultMaxHeight

	AggregatorSlots     = memio.AggregatorSlots
	MaxBufferObjectSize = constants.MaxBufferObjectSize
)
