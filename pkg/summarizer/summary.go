// Package summarizer provides summary generation for processing results.
package summarizer

import "time"

// Summary contains all data collected during a processing run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source image information
	Input ImageInfo

	// Output information
	Output OutputInfo

	// Timing results
	Timing TimingInfo

	// Processing settings
	Settings Settings
}

// ImageInfo describes a decoded image.
type ImageInfo struct {
	Path   string
	Width  int
	Height int
	Bytes  int64
}

// OutputInfo describes the written output artifact.
type OutputInfo struct {
	Path   string
	Format string
	Width  int
	Height int
	Bytes  int64
}

// TimingInfo contains per-phase timing measurements.
type TimingInfo struct {
	DecodeMs  int
	ProcessMs int
	EncodeMs  int
	TotalMs   int
}

// Settings contains the processing configuration.
type Settings struct {
	Operation  string
	Sigma      float64
	KernelSize int
	Workers    int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets source image information.
func (b *Builder) WithInput(path string, width, height int, bytes int64) *Builder {
	b.summary.Input = ImageInfo{
		Path:   path,
		Width:  width,
		Height: height,
		Bytes:  bytes,
	}
	return b
}

// WithOutput sets output artifact information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// WithTiming sets per-phase timing information.
func (b *Builder) WithTiming(decode, process, encode, total int) *Builder {
	b.summary.Timing = TimingInfo{
		DecodeMs:  decode,
		ProcessMs: process,
		EncodeMs:  encode,
		TotalMs:   total,
	}
	return b
}

// WithSettings sets processing settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
