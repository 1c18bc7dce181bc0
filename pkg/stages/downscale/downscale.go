// Package downscale implements the fixed-canvas downscale stage.
package downscale

import (
	"context"
	"runtime"
	"sync"

	"github.com/user/rastermill/pkg/pipeline"
	"github.com/user/rastermill/pkg/ports"
	"github.com/user/rastermill/pkg/raster"
)

// Stage resamples a decoded image onto a fixed target canvas using
// cover scaling with a centered crop.
type Stage struct {
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new downscale stage.
func NewStage(logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		logger:     logger.WithComponent("downscale"),
		numWorkers: numWorkers,
	}
}

// Execute resamples the input image. With Antialias set, each bilinear
// corner sample is Gaussian-blurred first; with FastPath set, samples
// come from the flat byte backing instead of the packed word backing.
// The two backings produce byte-identical output.
func (s *Stage) Execute(ctx context.Context, input pipeline.DownscaleInput) (pipeline.DownscaleResult, error) {
	img := input.Image

	geom, err := raster.NewCoverGeometry(img.Width, img.Height, input.TargetWidth, input.TargetHeight)
	if err != nil {
		return pipeline.DownscaleResult{}, err
	}

	var src raster.Source
	if input.FastPath {
		src = img.Bytes()
	} else {
		src = img.Words()
	}

	var sample func(fx, fy float64) raster.Color
	if input.Antialias {
		kernel, err := raster.NewGaussianKernel(input.KernelSize, input.Sigma)
		if err != nil {
			return pipeline.DownscaleResult{}, err
		}
		sample = func(fx, fy float64) raster.Color {
			return raster.BilinearAntialiased(fx, fy, src, kernel)
		}
	} else {
		sample = func(fx, fy float64) raster.Color {
			return raster.Bilinear(fx, fy, src)
		}
	}

	s.logger.Debug("Downscaling %dx%d to %dx%d (scale %.4f, %d workers)",
		img.Width, img.Height, geom.TargetW, geom.TargetH, geom.Scale, s.numWorkers)

	out := make([]byte, 4*geom.TargetW*geom.TargetH)
	scanRows(ctx, s.numWorkers, geom, func(row int) {
		h := geom.YOffset + row
		o := row * geom.TargetW * 4
		for col := 0; col < geom.TargetW; col++ {
			fx, fy := geom.SourceCoord(geom.XOffset+col, h)
			c := sample(fx, fy)
			out[o] = c.R
			out[o+1] = c.G
			out[o+2] = c.B
			out[o+3] = 255
			o += 4
		}
	})
	if err := ctx.Err(); err != nil {
		return pipeline.DownscaleResult{}, err
	}

	if n := src.StrayReads(); n > 0 {
		s.logger.Debug("%d sample reads landed far outside the source bounds", n)
	}

	return pipeline.DownscaleResult{Pix: out, Width: geom.TargetW, Height: geom.TargetH}, nil
}

// scanRows partitions destination rows across a worker pool. Every
// destination pixel depends only on the immutable source and kernel,
// and row writes are disjoint, so workers need no coordination beyond
// the row channel.
func scanRows(ctx context.Context, numWorkers int, geom raster.CoverGeometry, scanRow func(row int)) {
	rows := make(chan int, geom.TargetH)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				select {
				case <-ctx.Done():
					return
				default:
				}
				scanRow(row)
			}
		}()
	}

	for row := 0; row < geom.TargetH; row++ {
		rows <- row
	}
	close(rows)
	wg.Wait()
}
