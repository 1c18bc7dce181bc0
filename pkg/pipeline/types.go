package pipeline

import (
	"github.com/user/rastermill/pkg/raster"
)

// =============================================================================
// Downscale Stage Types
// =============================================================================

// DownscaleInput contains parameters for the fixed-canvas downscale.
type DownscaleInput struct {
	Image *raster.Image

	TargetWidth  int // Output canvas width (default: 256)
	TargetHeight int // Output canvas height (default: 256)

	// Antialias blurs the four bilinear corner samples with a Gaussian
	// kernel before blending. Recommended when shrinking significantly;
	// plain bilinear shows moire on fine detail.
	Antialias  bool
	Sigma      float64 // Gaussian sigma for the antialias kernel
	KernelSize int     // Antialias kernel side length (odd)

	// FastPath samples through the flat byte backing instead of the
	// packed word backing. Output bytes are identical either way; the
	// byte backing skips the per-pixel repacking at construction.
	FastPath bool
}

// DefaultDownscaleInput returns DownscaleInput with default values.
func DefaultDownscaleInput() DownscaleInput {
	return DownscaleInput{
		TargetWidth:  256,
		TargetHeight: 256,
		Sigma:        1.0,
		KernelSize:   5,
	}
}

// DownscaleResult contains the downscaled raster.
type DownscaleResult struct {
	Pix    []byte // 4*Width*Height interleaved RGBA, alpha forced 255
	Width  int
	Height int
}

// =============================================================================
// Blur Stage Types
// =============================================================================

// BlurInput contains parameters for the whole-image Gaussian blur.
type BlurInput struct {
	Image      *raster.Image
	Sigma      float64
	KernelSize int // Kernel side length (odd, default: 5)
}

// DefaultBlurInput returns BlurInput with default values.
func DefaultBlurInput() BlurInput {
	return BlurInput{
		Sigma:      1.0,
		KernelSize: 5,
	}
}

// BlurResult contains the blurred raster, same size as the input.
type BlurResult struct {
	Pix    []byte
	Width  int
	Height int
}

// =============================================================================
// Normalize Stage Types
// =============================================================================

// NormalizeInput contains parameters for the model-input normalization.
type NormalizeInput struct {
	Image        *raster.Image
	TargetWidth  int
	TargetHeight int
}

// DefaultNormalizeInput returns NormalizeInput with default values.
func DefaultNormalizeInput() NormalizeInput {
	return NormalizeInput{
		TargetWidth:  256,
		TargetHeight: 256,
	}
}

// NormalizeResult contains the channel-planar float buffer: all red
// values, then all green, then all blue, each normalized to [0, 1],
// 3*Width*Height values total.
type NormalizeResult struct {
	Planes []float32
	Width  int
	Height int
}
