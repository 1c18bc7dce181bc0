package raster

import (
	"fmt"
	"sync/atomic"
)

// strayMargin is how far outside the bounds a read may land before it
// counts as a stray read. Convolution windows legitimately reach up to
// a kernel radius past the edge; anything farther suggests a caller
// bug worth surfacing.
const strayMargin = 2

// Source is a read-only, bounds-checked view of a decoded raster.
// Reads inside the bounds return the stored sample. Reads outside the
// bounds return transparent black, which pads convolution windows near
// the edges instead of failing. At is the innermost call of every
// transform and must not allocate.
type Source interface {
	At(x, y int) Color
	Width() int
	Height() int

	// StrayReads reports how many reads landed more than strayMargin
	// pixels outside the bounds. Diagnostic only; it never changes
	// the returned colors.
	StrayReads() uint64
}

// Image is a decoded raster together with its interleaved RGBA pixel
// buffer: 4 bytes per pixel (R, G, B, A), row-major, row stride
// 4*Width. An Image is immutable for the duration of one operation.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage wraps an interleaved RGBA buffer. Both dimensions must be
// at least 1; a buffer whose length disagrees with the dimensions is a
// caller contract violation and panics.
func NewImage(pix []byte, width, height int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	checkBufferLen(len(pix), width, height)
	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// Words builds the packed-word backing for this image.
func (img *Image) Words() *WordSource {
	return NewWordSource(img.Pix, img.Width, img.Height)
}

// Bytes builds the flat-byte backing for this image. The source reads
// the image buffer in place.
func (img *Image) Bytes() *ByteSource {
	return NewByteSource(img.Pix, img.Width, img.Height)
}

// WordSource backs a raster with one packed 32-bit RGBA word per
// pixel, row-major. Construction repacks the byte buffer once so each
// read touches a single word.
type WordSource struct {
	width  int
	height int
	words  []uint32
	strays atomic.Uint64
}

// NewWordSource builds a WordSource from an interleaved RGBA byte
// buffer of exactly 4*width*height bytes. A mismatched buffer panics.
func NewWordSource(rgba []byte, width, height int) *WordSource {
	checkBufferLen(len(rgba), width, height)
	words := make([]uint32, width*height)
	for i := range words {
		o := i * 4
		words[i] = uint32(rgba[o])<<24 | uint32(rgba[o+1])<<16 | uint32(rgba[o+2])<<8 | uint32(rgba[o+3])
	}
	return &WordSource{width: width, height: height, words: words}
}

// Width returns the raster width in pixels.
func (s *WordSource) Width() int { return s.width }

// Height returns the raster height in pixels.
func (s *WordSource) Height() int { return s.height }

// At returns the sample at (x, y), or transparent black outside the
// bounds.
func (s *WordSource) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		if outsideMargin(x, y, s.width, s.height) {
			s.strays.Add(1)
		}
		return Color{}
	}
	w := s.words[y*s.width+x]
	return Color{R: uint8(w >> 24), G: uint8(w >> 16), B: uint8(w >> 8), A: uint8(w)}
}

// StrayReads returns the far-out-of-bounds read count.
func (s *WordSource) StrayReads() uint64 { return s.strays.Load() }

// ByteSource backs a raster with the flat interleaved RGBA byte buffer
// itself, 4 bytes per pixel, row-major. It reads the caller's buffer
// in place, skipping the per-pixel repacking WordSource pays up front.
// Observable behavior is identical to WordSource over the same bytes.
type ByteSource struct {
	width  int
	height int
	pix    []byte
	strays atomic.Uint64
}

// NewByteSource wraps an interleaved RGBA byte buffer of exactly
// 4*width*height bytes. A mismatched buffer panics.
func NewByteSource(rgba []byte, width, height int) *ByteSource {
	checkBufferLen(len(rgba), width, height)
	return &ByteSource{width: width, height: height, pix: rgba}
}

// Width returns the raster width in pixels.
func (s *ByteSource) Width() int { return s.width }

// Height returns the raster height in pixels.
func (s *ByteSource) Height() int { return s.height }

// At returns the sample at (x, y), or transparent black outside the
// bounds.
func (s *ByteSource) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		if outsideMargin(x, y, s.width, s.height) {
			s.strays.Add(1)
		}
		return Color{}
	}
	o := (y*s.width + x) * 4
	return Color{R: s.pix[o], G: s.pix[o+1], B: s.pix[o+2], A: s.pix[o+3]}
}

// StrayReads returns the far-out-of-bounds read count.
func (s *ByteSource) StrayReads() uint64 { return s.strays.Load() }

// checkBufferLen enforces the backing-buffer length contract. A short
// buffer would corrupt every later read, so this fails immediately
// rather than returning an error.
func checkBufferLen(got, width, height int) {
	if want := 4 * width * height; got != want {
		panic(fmt.Sprintf("raster: pixel buffer length %d, need 4*%d*%d=%d", got, width, height, want))
	}
}

func outsideMargin(x, y, w, h int) bool {
	return x < -strayMargin || x >= w+strayMargin || y < -strayMargin || y >= h+strayMargin
}

var (
	_ Source = (*WordSource)(nil)
	_ Source = (*ByteSource)(nil)
)
