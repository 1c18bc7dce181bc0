package orchestrator

import (
	"encoding/binary"
	"math"

	"github.com/user/rastermill/pkg/pipeline"
)

// tensorMagic identifies the planar float tensor container.
var tensorMagic = [4]byte{'R', 'M', 'T', '1'}

// encodeTensor serializes a planar float buffer as a little-endian
// stream: 4-byte magic, uint32 width, uint32 height, then 3*W*H
// float32 values in red, green, blue plane order. The fixed layout
// lets a downstream numeric consumer mmap the planes directly.
func encodeTensor(res pipeline.NormalizeResult) []byte {
	out := make([]byte, 12+4*len(res.Planes))
	copy(out[0:4], tensorMagic[:])
	binary.LittleEndian.PutUint32(out[4:8], uint32(res.Width))
	binary.LittleEndian.PutUint32(out[8:12], uint32(res.Height))
	for i, v := range res.Planes {
		binary.LittleEndian.PutUint32(out[12+4*i:], math.Float32bits(v))
	}
	return out
}
