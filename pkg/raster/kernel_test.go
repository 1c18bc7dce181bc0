package raster

import (
	"errors"
	"math"
	"testing"
)

func TestNewGaussianKernel_Normalized(t *testing.T) {
	cases := []struct {
		size  int
		sigma float64
	}{
		{1, 0.5},
		{3, 1.0},
		{5, 1.0},
		{5, 2.5},
		{7, 0.8},
		{9, 3.0},
	}

	for _, c := range cases {
		k, err := NewGaussianKernel(c.size, c.sigma)
		if err != nil {
			t.Fatalf("NewGaussianKernel(%d, %g): %v", c.size, c.sigma, err)
		}

		sum := 0.0
		for y := 0; y < k.Size(); y++ {
			for x := 0; x < k.Size(); x++ {
				sum += k.Weight(x, y)
			}
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("kernel %dx%d sigma=%g: weight sum %v, want 1.0", c.size, c.size, c.sigma, sum)
		}
	}
}

func TestNewGaussianKernel_RotationSymmetry(t *testing.T) {
	k, err := NewGaussianKernel(5, 1.3)
	if err != nil {
		t.Fatal(err)
	}

	// A Gaussian is symmetric under 180-degree rotation about the center.
	n := k.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			a := k.Weight(x, y)
			b := k.Weight(n-1-x, n-1-y)
			if math.Abs(a-b) > 1e-12 {
				t.Errorf("weight(%d,%d)=%v but weight(%d,%d)=%v", x, y, a, n-1-x, n-1-y, b)
			}
		}
	}
}

func TestNewGaussianKernel_CenterDominates(t *testing.T) {
	k, err := NewGaussianKernel(5, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	center := k.Weight(2, 2)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x == 2 && y == 2 {
				continue
			}
			if k.Weight(x, y) >= center {
				t.Errorf("weight(%d,%d)=%v not below center %v", x, y, k.Weight(x, y), center)
			}
		}
	}
}

func TestNewGaussianKernel_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		sigma float64
	}{
		{"even size", 4, 1.0},
		{"zero size", 0, 1.0},
		{"negative size", -3, 1.0},
		{"zero sigma", 5, 0},
		{"negative sigma", 5, -1.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewGaussianKernel(c.size, c.sigma)
			if !errors.Is(err, ErrInvalidKernel) {
				t.Errorf("NewGaussianKernel(%d, %g) = %v, want ErrInvalidKernel", c.size, c.sigma, err)
			}
		})
	}
}
