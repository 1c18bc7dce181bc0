package raster

import (
	"errors"
	"testing"
)

func TestNewCoverGeometry_WideSource(t *testing.T) {
	// 512x256 onto 256x256: scale = max(0.5, 1.0) = 1.0, so the
	// scaled raster is 512x256 and the crop takes columns [128, 384).
	g, err := NewCoverGeometry(512, 256, 256, 256)
	if err != nil {
		t.Fatal(err)
	}

	if g.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0", g.Scale)
	}
	if g.ScaledW != 512 || g.ScaledH != 256 {
		t.Errorf("scaled = %dx%d, want 512x256", g.ScaledW, g.ScaledH)
	}
	if g.XOffset != 128 || g.YOffset != 0 {
		t.Errorf("offsets = (%d,%d), want (128,0)", g.XOffset, g.YOffset)
	}

	// The scan window [128, 384) covers exactly 256 columns and, at
	// scale 1.0, maps straight back onto source columns [128, 384).
	if end := g.XOffset + g.TargetW; end != g.ScaledW-g.XOffset {
		t.Errorf("scan window end = %d, want %d", end, g.ScaledW-g.XOffset)
	}
	fx, _ := g.SourceCoord(g.XOffset, 0)
	if fx != 128 {
		t.Errorf("first scanned column maps to source x %v, want 128", fx)
	}
	fx, _ = g.SourceCoord(g.XOffset+g.TargetW-1, 0)
	if fx != 383 {
		t.Errorf("last scanned column maps to source x %v, want 383", fx)
	}
}

func TestNewCoverGeometry_TallSource(t *testing.T) {
	g, err := NewCoverGeometry(256, 1024, 256, 256)
	if err != nil {
		t.Fatal(err)
	}
	if g.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0", g.Scale)
	}
	if g.XOffset != 0 || g.YOffset != 384 {
		t.Errorf("offsets = (%d,%d), want (0,384)", g.XOffset, g.YOffset)
	}
}

func TestNewCoverGeometry_Upscale(t *testing.T) {
	g, err := NewCoverGeometry(64, 64, 256, 256)
	if err != nil {
		t.Fatal(err)
	}
	if g.Scale != 4.0 {
		t.Errorf("Scale = %v, want 4.0", g.Scale)
	}
	if g.ScaledW != 256 || g.ScaledH != 256 {
		t.Errorf("scaled = %dx%d, want 256x256", g.ScaledW, g.ScaledH)
	}
	if g.XOffset != 0 || g.YOffset != 0 {
		t.Errorf("offsets = (%d,%d), want (0,0)", g.XOffset, g.YOffset)
	}
}

func TestNewCoverGeometry_OddCropMargin(t *testing.T) {
	// 257x256 onto 256x256 leaves a scaled excess of 1, which integer
	// division splits as offset 0. The scan window must still emit
	// exactly the target width and stay inside the scaled raster.
	g, err := NewCoverGeometry(257, 256, 256, 256)
	if err != nil {
		t.Fatal(err)
	}
	if g.ScaledW-g.TargetW != 1 {
		t.Fatalf("scaled excess = %d, want 1", g.ScaledW-g.TargetW)
	}
	if g.XOffset != 0 {
		t.Errorf("XOffset = %d, want 0", g.XOffset)
	}
	last := g.XOffset + g.TargetW - 1
	if last >= g.ScaledW {
		t.Errorf("last scanned column %d outside scaled raster width %d", last, g.ScaledW)
	}
}

func TestNewCoverGeometry_RejectsZeroDimensions(t *testing.T) {
	cases := [][4]int{
		{0, 100, 256, 256},
		{100, 0, 256, 256},
		{100, 100, 0, 256},
		{100, 100, 256, 0},
	}
	for _, c := range cases {
		_, err := NewCoverGeometry(c[0], c[1], c[2], c[3])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewCoverGeometry(%v) = %v, want ErrInvalidDimensions", c, err)
		}
	}
}
