package raster

import (
	"fmt"
	"math"
)

// CoverGeometry maps a source raster onto a fixed target canvas using
// cover scaling: the scale factor fills the target in both axes and
// the excess is cropped symmetrically. Scanning the window
// [XOffset, XOffset+TargetW) x [YOffset, YOffset+TargetH) of the
// scaled-but-uncropped raster performs the centered crop through the
// loop bounds alone; the window always emits exactly TargetW x TargetH
// pixels.
type CoverGeometry struct {
	Scale   float64
	ScaledW int
	ScaledH int
	XOffset int
	YOffset int
	TargetW int
	TargetH int
}

// NewCoverGeometry computes the cover-scale mapping from a source onto
// a target canvas. A zero source dimension would make the scale factor
// infinite, so both dimensions are validated before any arithmetic.
func NewCoverGeometry(srcW, srcH, targetW, targetH int) (CoverGeometry, error) {
	if srcW < 1 || srcH < 1 {
		return CoverGeometry{}, fmt.Errorf("%w: source %dx%d", ErrInvalidDimensions, srcW, srcH)
	}
	if targetW < 1 || targetH < 1 {
		return CoverGeometry{}, fmt.Errorf("%w: target %dx%d", ErrInvalidDimensions, targetW, targetH)
	}

	scale := math.Max(float64(targetW)/float64(srcW), float64(targetH)/float64(srcH))
	scaledW := int(math.Round(float64(srcW) * scale))
	scaledH := int(math.Round(float64(srcH) * scale))

	return CoverGeometry{
		Scale:   scale,
		ScaledW: scaledW,
		ScaledH: scaledH,
		XOffset: max(0, scaledW-targetW) / 2,
		YOffset: max(0, scaledH-targetH) / 2,
		TargetW: targetW,
		TargetH: targetH,
	}, nil
}

// SourceCoord maps a coordinate of the scaled raster back to a
// fractional coordinate of the source.
func (g CoverGeometry) SourceCoord(w, h int) (fx, fy float64) {
	return float64(w) / g.Scale, float64(h) / g.Scale
}
