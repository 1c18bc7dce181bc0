package raster

import "math"

// Bilinear samples src at the fractional coordinate (fx, fy) using
// area-weighted blending of the four surrounding samples. Coordinates
// are clamped into [0, width-1] x [0, height-1] first, so samples at
// the edges repeat rather than fade out. At an integral coordinate the
// blend degenerates to the stored sample. The returned alpha is always
// fully opaque; source alpha never reaches the destination.
func Bilinear(fx, fy float64, src Source) Color {
	return blendCorners(fx, fy, src, src.At)
}

// GaussianAt convolves the kernel over src centered at (x, y). Reads
// past the edge contribute transparent black, which darkens blurred
// edges slightly; that artifact is part of the contract and must not
// be compensated for.
func GaussianAt(x, y int, src Source, k Kernel) Color {
	radius := k.Radius()
	size := k.Size()
	var r, g, b float64
	for ky := 0; ky < size; ky++ {
		for kx := 0; kx < size; kx++ {
			c := src.At(x-radius+kx, y-radius+ky)
			w := k.Weight(kx, ky)
			r += float64(c.R) * w
			g += float64(c.G) * w
			b += float64(c.B) * w
		}
	}
	return Color{R: roundChannel(r), G: roundChannel(g), B: roundChannel(b), A: 255}
}

// BilinearAntialiased samples like Bilinear but blurs each of the four
// corner samples with the kernel before blending. Blurring only the
// corners the blend actually needs avoids filtering the whole source,
// at the cost of re-blurring overlapping corners for adjacent
// destination pixels. The ordering (blur, then interpolate) is fixed;
// swapping it changes output pixels.
func BilinearAntialiased(fx, fy float64, src Source, k Kernel) Color {
	return blendCorners(fx, fy, src, func(x, y int) Color {
		return GaussianAt(x, y, src, k)
	})
}

// blendCorners performs the shared bilinear geometry over whatever
// corner evaluation the caller provides.
func blendCorners(fx, fy float64, src Source, corner func(x, y int) Color) Color {
	fx = clampf(fx, 0, float64(src.Width()-1))
	fy = clampf(fy, 0, float64(src.Height()-1))

	x0 := int(math.Floor(fx))
	x1 := int(math.Ceil(fx))
	y0 := int(math.Floor(fy))
	y1 := int(math.Ceil(fy))
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	c00 := corner(x0, y0)
	c10 := corner(x1, y0)
	c01 := corner(x0, y1)
	c11 := corner(x1, y1)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	return Color{
		R: roundChannel(float64(c00.R)*w00 + float64(c10.R)*w10 + float64(c01.R)*w01 + float64(c11.R)*w11),
		G: roundChannel(float64(c00.G)*w00 + float64(c10.G)*w10 + float64(c01.G)*w01 + float64(c11.G)*w11),
		B: roundChannel(float64(c00.B)*w00 + float64(c10.B)*w10 + float64(c01.B)*w01 + float64(c11.B)*w11),
		A: 255,
	}
}

// roundChannel rounds half away from zero and clamps into [0, 255].
func roundChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
