package downscale

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/user/rastermill/pkg/mocks"
	"github.com/user/rastermill/pkg/pipeline"
	"github.com/user/rastermill/pkg/raster"
)

// gradientImage builds an image whose pixel values encode their
// position, so geometry mistakes show up as wrong bytes.
func gradientImage(t *testing.T, width, height int) *raster.Image {
	t.Helper()
	pix := make([]byte, 4*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := (y*width + x) * 4
			pix[o] = byte(x)
			pix[o+1] = byte(y)
			pix[o+2] = byte(x + y)
			pix[o+3] = 255
		}
	}
	img, err := raster.NewImage(pix, width, height)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestStage_Execute_OutputShape(t *testing.T) {
	stage := NewStage(mocks.NewLogger(), 4)

	input := pipeline.DefaultDownscaleInput()
	input.Image = gradientImage(t, 500, 300)

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Width != 256 || result.Height != 256 {
		t.Fatalf("output %dx%d, want 256x256", result.Width, result.Height)
	}
	if len(result.Pix) != 4*256*256 {
		t.Fatalf("output buffer %d bytes, want %d", len(result.Pix), 4*256*256)
	}
	for i := 3; i < len(result.Pix); i += 4 {
		if result.Pix[i] != 255 {
			t.Fatalf("alpha at byte %d is %d, want 255", i, result.Pix[i])
		}
	}
}

func TestStage_Execute_WideSourceCropGeometry(t *testing.T) {
	// 512x256 onto 256x256: scale 1.0, crop columns [128, 384). The
	// sampled coordinates are integral, so each output pixel must be
	// the exact source sample 128 columns to the right.
	stage := NewStage(mocks.NewLogger(), 2)

	input := pipeline.DefaultDownscaleInput()
	input.Image = gradientImage(t, 512, 256)

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Width != 256 || result.Height != 256 {
		t.Fatalf("output %dx%d, want 256x256", result.Width, result.Height)
	}

	src := input.Image.Bytes()
	for _, probe := range [][2]int{{0, 0}, {255, 0}, {0, 255}, {100, 77}, {255, 255}} {
		col, row := probe[0], probe[1]
		o := (row*256 + col) * 4
		want := src.At(col+128, row)
		if result.Pix[o] != want.R || result.Pix[o+1] != want.G || result.Pix[o+2] != want.B {
			t.Errorf("output (%d,%d) = (%d,%d,%d), want source col %d = (%d,%d,%d)",
				col, row, result.Pix[o], result.Pix[o+1], result.Pix[o+2], col+128, want.R, want.G, want.B)
		}
	}
}

func TestStage_Execute_IdentityAtSameSize(t *testing.T) {
	// Resampling a 256x256 image onto a 256x256 canvas is scale 1.0
	// with no crop: every sample lands on an integral coordinate and
	// bilinear reproduces the input exactly.
	stage := NewStage(mocks.NewLogger(), 0)

	input := pipeline.DefaultDownscaleInput()
	input.Image = gradientImage(t, 256, 256)

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(result.Pix, input.Image.Pix) {
		t.Error("same-size downscale did not reproduce the input")
	}

	// And a second pass over its own output is a fixed point.
	again, err := raster.NewImage(result.Pix, result.Width, result.Height)
	if err != nil {
		t.Fatal(err)
	}
	input.Image = again
	result2, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(result2.Pix, result.Pix) {
		t.Error("downscale of own output changed pixels")
	}
}

func TestStage_Execute_FastPathIdenticalOutput(t *testing.T) {
	img := gradientImage(t, 333, 217)

	for _, antialias := range []bool{false, true} {
		input := pipeline.DefaultDownscaleInput()
		input.Image = img
		input.Antialias = antialias
		input.Sigma = 1.2

		naive, err := NewStage(mocks.NewLogger(), 3).Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("naive path: %v", err)
		}

		input.FastPath = true
		fast, err := NewStage(mocks.NewLogger(), 3).Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("fast path: %v", err)
		}

		if !bytes.Equal(naive.Pix, fast.Pix) {
			t.Errorf("antialias=%v: fast path output differs from naive path", antialias)
		}
	}
}

func TestStage_Execute_AntialiasDiffersFromPlain(t *testing.T) {
	// A checkerboard has maximal high-frequency content; blurred
	// corners must change the result versus raw bilinear.
	const n = 64
	pix := make([]byte, 4*n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			o := (y*n + x) * 4
			v := byte(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			pix[o], pix[o+1], pix[o+2], pix[o+3] = v, v, v, 255
		}
	}
	img, err := raster.NewImage(pix, n, n)
	if err != nil {
		t.Fatal(err)
	}

	input := pipeline.DefaultDownscaleInput()
	input.Image = img
	input.TargetWidth = 16
	input.TargetHeight = 16

	plain, err := NewStage(mocks.NewLogger(), 2).Execute(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}

	input.Antialias = true
	smoothed, err := NewStage(mocks.NewLogger(), 2).Execute(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(plain.Pix, smoothed.Pix) {
		t.Error("antialiased output identical to plain output on a checkerboard")
	}
}

func TestStage_Execute_InvalidKernel(t *testing.T) {
	input := pipeline.DefaultDownscaleInput()
	input.Image = gradientImage(t, 10, 10)
	input.Antialias = true
	input.KernelSize = 4

	_, err := NewStage(mocks.NewLogger(), 1).Execute(context.Background(), input)
	if !errors.Is(err, raster.ErrInvalidKernel) {
		t.Errorf("got %v, want ErrInvalidKernel", err)
	}
}
