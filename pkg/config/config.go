// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"github.com/user/rastermill/pkg/orchestrator"
	"github.com/user/rastermill/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for rastermill.
type Config struct {
	// Input/Output
	InputPath  string `yaml:"input"`
	OutputPath string `yaml:"output"`

	// Operation selects the transform: downscale, antialiased,
	// antialiased-fast, blur, normalize.
	Operation string `yaml:"operation"`

	// Geometry
	TargetWidth  int `yaml:"target_width"`
	TargetHeight int `yaml:"target_height"`

	// Filtering
	Sigma      float64 `yaml:"sigma"`
	KernelSize int     `yaml:"kernel_size"`

	// Output container: png or webp.
	Format string `yaml:"format"`

	// Processing
	Workers int `yaml:"workers"`

	// Reporting
	SummaryPath string `yaml:"summary"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Operation:    string(orchestrator.OpDownscale),
		TargetWidth:  256,
		TargetHeight: 256,
		Sigma:        1.0,
		KernelSize:   5,
		Format:       "png",
		LogLevel:     "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the
// defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks option combinations before a run starts.
func (c Config) Validate() error {
	switch orchestrator.Operation(c.Operation) {
	case orchestrator.OpDownscale, orchestrator.OpAntialiased,
		orchestrator.OpAntialiasedFast, orchestrator.OpBlur, orchestrator.OpNormalize:
	default:
		return fmt.Errorf("unknown operation %q", c.Operation)
	}
	if c.TargetWidth < 1 || c.TargetHeight < 1 {
		return fmt.Errorf("target size %dx%d must be at least 1x1", c.TargetWidth, c.TargetHeight)
	}
	if c.KernelSize < 1 || c.KernelSize%2 == 0 {
		return fmt.Errorf("kernel size %d must be an odd positive integer", c.KernelSize)
	}
	if c.Sigma <= 0 {
		return fmt.Errorf("sigma %g must be positive", c.Sigma)
	}
	return nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		InputPath:  c.InputPath,
		OutputPath: c.OutputPath,

		Operation: orchestrator.Operation(c.Operation),

		TargetWidth:  c.TargetWidth,
		TargetHeight: c.TargetHeight,

		Sigma:      c.Sigma,
		KernelSize: c.KernelSize,

		OutputFormat: ports.ParseImageFormat(c.Format),
	}
}
