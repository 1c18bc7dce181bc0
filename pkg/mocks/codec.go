package mocks

import (
	"github.com/user/rastermill/pkg/ports"
	"github.com/user/rastermill/pkg/raster"
)

// Decoder is a mock implementation of ports.ImageDecoder.
type Decoder struct {
	DecodeFunc func(data []byte) (*raster.Image, error)
}

func (m *Decoder) Decode(data []byte) (*raster.Image, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	// Default: a 2x2 opaque gray image.
	pix := make([]byte, 16)
	for i := range pix {
		pix[i] = 128
		if i%4 == 3 {
			pix[i] = 255
		}
	}
	return raster.NewImage(pix, 2, 2)
}

var _ ports.ImageDecoder = (*Decoder)(nil)

// Encoder is a mock implementation of ports.ImageEncoder.
type Encoder struct {
	EncodeFunc func(rgba []byte, width, height int, format ports.ImageFormat) ([]byte, error)

	// LastCall records the arguments of the most recent Encode call
	// (for test verification).
	LastCall struct {
		RGBA   []byte
		Width  int
		Height int
		Format ports.ImageFormat
	}
}

func (m *Encoder) Encode(rgba []byte, width, height int, format ports.ImageFormat) ([]byte, error) {
	m.LastCall.RGBA = rgba
	m.LastCall.Width = width
	m.LastCall.Height = height
	m.LastCall.Format = format
	if m.EncodeFunc != nil {
		return m.EncodeFunc(rgba, width, height, format)
	}
	return []byte("encoded"), nil
}

var _ ports.ImageEncoder = (*Encoder)(nil)
