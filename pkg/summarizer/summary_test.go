package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithInput(t *testing.T) {
	summary := NewBuilder().
		WithInput("photo.jpg", 1920, 1080, 204800).
		Build()

	if summary.Input.Path != "photo.jpg" {
		t.Errorf("expected path 'photo.jpg', got '%s'", summary.Input.Path)
	}
	if summary.Input.Width != 1920 || summary.Input.Height != 1080 {
		t.Errorf("expected size 1920x1080, got %dx%d", summary.Input.Width, summary.Input.Height)
	}
	if summary.Input.Bytes != 204800 {
		t.Errorf("expected 204800 bytes, got %d", summary.Input.Bytes)
	}
}

func TestBuilder_WithTiming(t *testing.T) {
	summary := NewBuilder().
		WithTiming(100, 200, 50, 350).
		Build()

	if summary.Timing.DecodeMs != 100 {
		t.Errorf("expected DecodeMs 100, got %d", summary.Timing.DecodeMs)
	}
	if summary.Timing.ProcessMs != 200 {
		t.Errorf("expected ProcessMs 200, got %d", summary.Timing.ProcessMs)
	}
	if summary.Timing.EncodeMs != 50 {
		t.Errorf("expected EncodeMs 50, got %d", summary.Timing.EncodeMs)
	}
	if summary.Timing.TotalMs != 350 {
		t.Errorf("expected TotalMs 350, got %d", summary.Timing.TotalMs)
	}
}

func TestBuilder_WithSettings(t *testing.T) {
	settings := Settings{
		Operation:  "antialiased",
		Sigma:      1.5,
		KernelSize: 7,
		Workers:    4,
	}

	summary := NewBuilder().
		WithSettings(settings).
		Build()

	if summary.Settings.Operation != "antialiased" {
		t.Errorf("expected Operation 'antialiased', got '%s'", summary.Settings.Operation)
	}
	if summary.Settings.Sigma != 1.5 {
		t.Errorf("expected Sigma 1.5, got %f", summary.Settings.Sigma)
	}
	if summary.Settings.KernelSize != 7 {
		t.Errorf("expected KernelSize 7, got %d", summary.Settings.KernelSize)
	}
}

func TestBuilder_WithOutput(t *testing.T) {
	output := OutputInfo{
		Path:   "out.webp",
		Format: "webp",
		Width:  256,
		Height: 256,
		Bytes:  10240,
	}

	summary := NewBuilder().
		WithOutput(output).
		Build()

	if summary.Output.Path != "out.webp" {
		t.Errorf("expected Path 'out.webp', got '%s'", summary.Output.Path)
	}
	if summary.Output.Bytes != 10240 {
		t.Errorf("expected Bytes 10240, got %d", summary.Output.Bytes)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	summary := NewBuilder().
		WithInput("in.png", 512, 256, 65536).
		WithOutput(OutputInfo{
			Path:   "out.png",
			Format: "png",
			Width:  256,
			Height: 256,
			Bytes:  32768,
		}).
		WithTiming(10, 40, 20, 70).
		WithSettings(Settings{
			Operation: "downscale",
			Sigma:     1.0,
		}).
		Build()

	// Verify all fields are set
	if summary.Input.Path != "in.png" {
		t.Error("Input.Path not set correctly")
	}
	if summary.Output.Width != 256 {
		t.Error("Output.Width not set correctly")
	}
	if summary.Timing.TotalMs != 70 {
		t.Error("Timing.TotalMs not set correctly")
	}
	if summary.Settings.Operation != "downscale" {
		t.Error("Settings.Operation not set correctly")
	}
}
