package raster

import "errors"

var (
	// ErrInvalidDimensions reports a raster or target with a zero or
	// negative dimension. Rejected before any pixel work.
	ErrInvalidDimensions = errors.New("raster: dimensions must be at least 1x1")

	// ErrInvalidKernel reports a kernel size that is not an odd
	// positive integer, or a non-positive sigma.
	ErrInvalidKernel = errors.New("raster: invalid kernel parameters")
)
