// Package blur implements the whole-image Gaussian blur stage.
package blur

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/user/rastermill/pkg/pipeline"
	"github.com/user/rastermill/pkg/ports"
	"github.com/user/rastermill/pkg/raster"
)

// Stage blurs every pixel of an image with a Gaussian kernel. The
// output has the same dimensions as the input; windows reaching past
// the edges read transparent black, so edges come out slightly darker.
type Stage struct {
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new blur stage.
func NewStage(logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		logger:     logger.WithComponent("blur"),
		numWorkers: numWorkers,
	}
}

// Execute blurs the input image.
func (s *Stage) Execute(ctx context.Context, input pipeline.BlurInput) (pipeline.BlurResult, error) {
	img := input.Image
	if img.Width < 1 || img.Height < 1 {
		return pipeline.BlurResult{}, fmt.Errorf("%w: %dx%d", raster.ErrInvalidDimensions, img.Width, img.Height)
	}

	kernel, err := raster.NewGaussianKernel(input.KernelSize, input.Sigma)
	if err != nil {
		return pipeline.BlurResult{}, err
	}

	src := img.Words()

	s.logger.Debug("Blurring %dx%d with %dx%d kernel, sigma %.2f (%d workers)",
		img.Width, img.Height, kernel.Size(), kernel.Size(), input.Sigma, s.numWorkers)

	out := make([]byte, 4*img.Width*img.Height)
	rows := make(chan int, img.Height)

	var wg sync.WaitGroup
	for w := 0; w < s.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				select {
				case <-ctx.Done():
					return
				default:
				}
				o := y * img.Width * 4
				for x := 0; x < img.Width; x++ {
					c := raster.GaussianAt(x, y, src, kernel)
					out[o] = c.R
					out[o+1] = c.G
					out[o+2] = c.B
					out[o+3] = 255
					o += 4
				}
			}
		}()
	}

	for y := 0; y < img.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return pipeline.BlurResult{}, err
	}

	return pipeline.BlurResult{Pix: out, Width: img.Width, Height: img.Height}, nil
}
