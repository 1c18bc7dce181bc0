// Package raster implements the resampling and filtering core: pixel
// sources over decoded image buffers, Gaussian kernels, the samplers
// that evaluate filtered colors at fractional coordinates, and the
// cover-scale geometry shared by every whole-image transform.
package raster

// Color is an 8-bit sRGB sample with alpha.
type Color struct {
	R, G, B, A uint8
}
