package ports

import (
	"github.com/user/rastermill/pkg/raster"
)

// ImageFormat specifies a compressed image container.
type ImageFormat int

const (
	// FormatPNG is lossless PNG, the default output container.
	FormatPNG ImageFormat = iota
	// FormatWebP is lossless WebP.
	FormatWebP
)

// String returns the conventional file extension for the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// ParseImageFormat parses a format name. Unknown names fall back to PNG.
func ParseImageFormat(s string) ImageFormat {
	switch s {
	case "webp":
		return FormatWebP
	default:
		return FormatPNG
	}
}

// ImageDecoder turns compressed image bytes (PNG, JPEG or WebP) into a
// decoded raster with its interleaved RGBA buffer.
type ImageDecoder interface {
	Decode(data []byte) (*raster.Image, error)
}

// ImageEncoder turns an interleaved RGBA buffer back into compressed
// image bytes. rgba must hold exactly 4*width*height bytes in row-major
// R, G, B, A order.
type ImageEncoder interface {
	Encode(rgba []byte, width, height int, format ImageFormat) ([]byte, error)
}
