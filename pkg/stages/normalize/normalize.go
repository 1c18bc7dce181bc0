// Package normalize implements the model-input normalization stage.
package normalize

import (
	"context"
	"runtime"
	"sync"

	"github.com/user/rastermill/pkg/pipeline"
	"github.com/user/rastermill/pkg/ports"
	"github.com/user/rastermill/pkg/raster"
)

// Stage resamples an image with the same cover-scale geometry as the
// downscale stage, but writes each channel value divided by 255 into
// three separate float planes (all red, then all green, then all
// blue). The planar layout feeds numeric consumers that want channel
// tensors rather than interleaved bytes.
type Stage struct {
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new normalize stage.
func NewStage(logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		logger:     logger.WithComponent("normalize"),
		numWorkers: numWorkers,
	}
}

// Execute produces the channel-planar normalized buffer.
func (s *Stage) Execute(ctx context.Context, input pipeline.NormalizeInput) (pipeline.NormalizeResult, error) {
	img := input.Image

	geom, err := raster.NewCoverGeometry(img.Width, img.Height, input.TargetWidth, input.TargetHeight)
	if err != nil {
		return pipeline.NormalizeResult{}, err
	}

	src := img.Words()

	s.logger.Debug("Normalizing %dx%d to %dx%d planar floats (%d workers)",
		img.Width, img.Height, geom.TargetW, geom.TargetH, s.numWorkers)

	planeSize := geom.TargetW * geom.TargetH
	planes := make([]float32, 3*planeSize)
	rows := make(chan int, geom.TargetH)

	var wg sync.WaitGroup
	for w := 0; w < s.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				select {
				case <-ctx.Done():
					return
				default:
				}
				h := geom.YOffset + row
				i := row * geom.TargetW
				for col := 0; col < geom.TargetW; col++ {
					fx, fy := geom.SourceCoord(geom.XOffset+col, h)
					c := raster.Bilinear(fx, fy, src)
					planes[i] = float32(c.R) / 255.0
					planes[planeSize+i] = float32(c.G) / 255.0
					planes[2*planeSize+i] = float32(c.B) / 255.0
					i++
				}
			}
		}()
	}

	for row := 0; row < geom.TargetH; row++ {
		rows <- row
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return pipeline.NormalizeResult{}, err
	}

	return pipeline.NormalizeResult{Planes: planes, Width: geom.TargetW, Height: geom.TargetH}, nil
}
