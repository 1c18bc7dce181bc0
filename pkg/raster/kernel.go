package raster

import (
	"fmt"
	"math"
)

// Kernel is a normalized square convolution kernel. Weights sum to
// one, so convolving preserves overall image brightness. A Kernel is
// built once per operation and read concurrently without locking.
type Kernel struct {
	size    int
	weights []float64
}

// NewGaussianKernel builds a size x size Gaussian kernel. Size must be
// an odd positive integer and sigma must be positive; sigma <= 0 would
// divide by zero in the weight formula, so it is rejected up front.
func NewGaussianKernel(size int, sigma float64) (Kernel, error) {
	if size < 1 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: size %d", ErrInvalidKernel, size)
	}
	if sigma <= 0 {
		return Kernel{}, fmt.Errorf("%w: sigma %g", ErrInvalidKernel, sigma)
	}

	weights := make([]float64, size*size)
	center := size / 2
	norm := 1.0 / (2 * math.Pi * sigma * sigma)
	sum := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - center)
			dy := float64(y - center)
			w := norm * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
			weights[y*size+x] = w
			sum += w
		}
	}

	// Renormalize so the discrete weights carry unit mass.
	for i := range weights {
		weights[i] /= sum
	}

	return Kernel{size: size, weights: weights}, nil
}

// Size returns the kernel's side length.
func (k Kernel) Size() int { return k.size }

// Radius returns the reach of the kernel from its center.
func (k Kernel) Radius() int { return k.size / 2 }

// Weight returns the weight at kernel cell (x, y).
func (k Kernel) Weight(x, y int) float64 { return k.weights[y*k.size+x] }
