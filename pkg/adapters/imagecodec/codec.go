// Package imagecodec decodes and encodes compressed images at the
// boundary of the resampling pipeline. PNG, JPEG and WebP decode;
// PNG and WebP encode (both lossless).
package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg" // register JPEG decoding

	"github.com/HugoSmits86/nativewebp"
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/user/rastermill/pkg/ports"
	"github.com/user/rastermill/pkg/raster"
)

// Codec implements ports.ImageDecoder and ports.ImageEncoder using
// the standard image packages plus WebP support.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Decode decodes compressed image bytes into a raster with its
// interleaved RGBA buffer. The container format is auto-detected.
func (c *Codec) Decode(data []byte) (*raster.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: decoded %dx%d", raster.ErrInvalidDimensions, width, height)
	}

	pix := make([]byte, 4*width*height)
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == 4*width && bounds.Min == (image.Point{}) {
		copy(pix, nrgba.Pix)
	} else {
		o := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, a := img.At(x, y).RGBA()
				pix[o] = uint8(r >> 8)
				pix[o+1] = uint8(g >> 8)
				pix[o+2] = uint8(b >> 8)
				pix[o+3] = uint8(a >> 8)
				o += 4
			}
		}
	}

	return raster.NewImage(pix, width, height)
}

// Encode encodes an interleaved RGBA buffer into the requested
// lossless container.
func (c *Codec) Encode(rgba []byte, width, height int, format ports.ImageFormat) ([]byte, error) {
	if len(rgba) != 4*width*height {
		return nil, fmt.Errorf("encode: buffer length %d, need 4*%d*%d", len(rgba), width, height)
	}

	img := &image.NRGBA{
		Pix:    rgba,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}

	var buf bytes.Buffer
	switch format {
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatWebP:
		if err := nativewebp.Encode(&buf, img, nil); err != nil {
			return nil, fmt.Errorf("encode WebP: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %d", format)
	}

	return buf.Bytes(), nil
}

var (
	_ ports.ImageDecoder = (*Codec)(nil)
	_ ports.ImageEncoder = (*Codec)(nil)
)
