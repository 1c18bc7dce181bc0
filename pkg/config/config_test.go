package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/rastermill/pkg/orchestrator"
	"github.com/user/rastermill/pkg/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Operation != "downscale" {
		t.Errorf("default operation %q, want downscale", cfg.Operation)
	}
	if cfg.TargetWidth != 256 || cfg.TargetHeight != 256 {
		t.Errorf("default target %dx%d, want 256x256", cfg.TargetWidth, cfg.TargetHeight)
	}
	if cfg.KernelSize != 5 {
		t.Errorf("default kernel size %d, want 5", cfg.KernelSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	yamlContent := `
operation: blur
sigma: 2.5
kernel_size: 7
format: webp
workers: 3
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Operation != "blur" {
		t.Errorf("operation %q, want blur", cfg.Operation)
	}
	if cfg.Sigma != 2.5 {
		t.Errorf("sigma %v, want 2.5", cfg.Sigma)
	}
	if cfg.KernelSize != 7 {
		t.Errorf("kernel size %d, want 7", cfg.KernelSize)
	}
	// Unset fields keep their defaults.
	if cfg.TargetWidth != 256 {
		t.Errorf("target width %d, want default 256", cfg.TargetWidth)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFromFile of missing file succeeded")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown operation", func(c *Config) { c.Operation = "rotate" }, true},
		{"zero target width", func(c *Config) { c.TargetWidth = 0 }, true},
		{"even kernel", func(c *Config) { c.KernelSize = 4 }, true},
		{"zero sigma", func(c *Config) { c.Sigma = 0 }, true},
		{"negative sigma", func(c *Config) { c.Sigma = -1 }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Defaults()
			c.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.InputPath = "in.jpg"
	cfg.OutputPath = "out.webp"
	cfg.Operation = "antialiased-fast"
	cfg.Format = "webp"

	oc := cfg.ToOrchestratorConfig()

	if oc.Operation != orchestrator.OpAntialiasedFast {
		t.Errorf("operation %v, want OpAntialiasedFast", oc.Operation)
	}
	if oc.OutputFormat != ports.FormatWebP {
		t.Errorf("format %v, want WebP", oc.OutputFormat)
	}
	if oc.InputPath != "in.jpg" || oc.OutputPath != "out.webp" {
		t.Errorf("paths not carried over: %+v", oc)
	}
}
