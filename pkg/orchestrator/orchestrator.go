// Package orchestrator coordinates the decode, process and encode
// phases of a run.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/user/rastermill/pkg/pipeline"
	"github.com/user/rastermill/pkg/ports"
)

// Operation selects the transform applied to the decoded image.
type Operation string

const (
	// OpDownscale is plain bilinear downscale onto the target canvas.
	OpDownscale Operation = "downscale"
	// OpAntialiased blurs each bilinear corner sample before blending.
	OpAntialiased Operation = "antialiased"
	// OpAntialiasedFast is OpAntialiased reading through the flat byte
	// backing. Output is byte-identical to OpAntialiased.
	OpAntialiasedFast Operation = "antialiased-fast"
	// OpBlur is a same-size whole-image Gaussian blur.
	OpBlur Operation = "blur"
	// OpNormalize produces the channel-planar float tensor.
	OpNormalize Operation = "normalize"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input/Output
	InputPath  string
	OutputPath string

	Operation Operation

	// Geometry
	TargetWidth  int
	TargetHeight int

	// Filtering
	Sigma      float64
	KernelSize int

	// Output
	OutputFormat ports.ImageFormat
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Operation:    OpDownscale,
		TargetWidth:  256,
		TargetHeight: 256,
		Sigma:        1.0,
		KernelSize:   5,
		OutputFormat: ports.FormatPNG,
	}
}

// RunResult carries the measurable outcome of a run for summaries.
type RunResult struct {
	InputWidth  int
	InputHeight int
	InputBytes  int

	OutputWidth  int
	OutputHeight int
	OutputBytes  int

	DecodeMs  int
	ProcessMs int
	EncodeMs  int
	TotalMs   int
}

// Orchestrator coordinates the execution of one image operation.
type Orchestrator struct {
	downscaleStage pipeline.Stage[pipeline.DownscaleInput, pipeline.DownscaleResult]
	blurStage      pipeline.Stage[pipeline.BlurInput, pipeline.BlurResult]
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, pipeline.NormalizeResult]
	decoder        ports.ImageDecoder
	encoder        ports.ImageEncoder
	fs             ports.FileSystem
	observer       ports.PhaseObserver
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	downscaleStage pipeline.Stage[pipeline.DownscaleInput, pipeline.DownscaleResult],
	blurStage pipeline.Stage[pipeline.BlurInput, pipeline.BlurResult],
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, pipeline.NormalizeResult],
	decoder ports.ImageDecoder,
	encoder ports.ImageEncoder,
	fs ports.FileSystem,
	observer ports.PhaseObserver,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		downscaleStage: downscaleStage,
		blurStage:      blurStage,
		normalizeStage: normalizeStage,
		decoder:        decoder,
		encoder:        encoder,
		fs:             fs,
		observer:       observer,
		logger:         logger,
	}
}

// Run executes the complete decode -> process -> encode flow.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.F("Processing %s", config.InputPath))
	runStart := time.Now()
	result := RunResult{}

	data, err := o.fs.ReadFile(config.InputPath)
	if err != nil {
		return result, fmt.Errorf("read input: %w", err)
	}
	result.InputBytes = len(data)

	// 1. Decode. A decode failure fails the whole run; a half-decoded
	// image cannot be meaningfully resampled.
	o.observer.PhaseStarted("decode")
	decodeStart := time.Now()
	o.logger.Debug(l10n.F("Decoding %d bytes", len(data)))
	img, err := o.decoder.Decode(data)
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode input: %s", err))
		return result, fmt.Errorf("decode: %w", err)
	}
	decodeElapsed := time.Since(decodeStart)
	o.observer.PhaseCompleted("decode", decodeElapsed)
	result.DecodeMs = int(decodeElapsed.Milliseconds())
	result.InputWidth = img.Width
	result.InputHeight = img.Height
	o.logger.Info(l10n.F("Decoded %dx%d image", img.Width, img.Height))

	// 2. Process.
	o.observer.PhaseStarted("process")
	processStart := time.Now()
	var (
		outPix    []byte
		outWidth  int
		outHeight int
	)
	switch config.Operation {
	case OpDownscale, OpAntialiased, OpAntialiasedFast:
		input := pipeline.DownscaleInput{
			Image:        img,
			TargetWidth:  config.TargetWidth,
			TargetHeight: config.TargetHeight,
			Antialias:    config.Operation != OpDownscale,
			Sigma:        config.Sigma,
			KernelSize:   config.KernelSize,
			FastPath:     config.Operation == OpAntialiasedFast,
		}
		res, err := o.downscaleStage.Execute(ctx, input)
		if err != nil {
			o.logger.Error(l10n.F("Failed to process image: %s", err))
			return result, fmt.Errorf("downscale stage: %w", err)
		}
		outPix, outWidth, outHeight = res.Pix, res.Width, res.Height

	case OpBlur:
		input := pipeline.BlurInput{
			Image:      img,
			Sigma:      config.Sigma,
			KernelSize: config.KernelSize,
		}
		res, err := o.blurStage.Execute(ctx, input)
		if err != nil {
			o.logger.Error(l10n.F("Failed to process image: %s", err))
			return result, fmt.Errorf("blur stage: %w", err)
		}
		outPix, outWidth, outHeight = res.Pix, res.Width, res.Height

	case OpNormalize:
		input := pipeline.NormalizeInput{
			Image:        img,
			TargetWidth:  config.TargetWidth,
			TargetHeight: config.TargetHeight,
		}
		res, err := o.normalizeStage.Execute(ctx, input)
		if err != nil {
			o.logger.Error(l10n.F("Failed to process image: %s", err))
			return result, fmt.Errorf("normalize stage: %w", err)
		}
		processElapsed := time.Since(processStart)
		o.observer.PhaseCompleted("process", processElapsed)
		result.ProcessMs = int(processElapsed.Milliseconds())
		return o.writeTensor(config, res, result, runStart)

	default:
		return result, fmt.Errorf("unknown operation: %q", config.Operation)
	}
	processElapsed := time.Since(processStart)
	o.observer.PhaseCompleted("process", processElapsed)
	result.ProcessMs = int(processElapsed.Milliseconds())
	result.OutputWidth = outWidth
	result.OutputHeight = outHeight

	// 3. Encode. Same policy as decode: propagate, never retry.
	o.observer.PhaseStarted("encode")
	encodeStart := time.Now()
	o.logger.Debug(l10n.F("Encoding %dx%d as %s", outWidth, outHeight, config.OutputFormat.String()))
	encoded, err := o.encoder.Encode(outPix, outWidth, outHeight, config.OutputFormat)
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode output: %s", err))
		return result, fmt.Errorf("encode: %w", err)
	}
	encodeElapsed := time.Since(encodeStart)
	o.observer.PhaseCompleted("encode", encodeElapsed)
	result.EncodeMs = int(encodeElapsed.Milliseconds())
	result.OutputBytes = len(encoded)
	o.logger.Debug(l10n.F("Encoded %d bytes", len(encoded)))

	if err := o.fs.WriteFile(config.OutputPath, encoded); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return result, fmt.Errorf("write output: %w", err)
	}

	result.TotalMs = int(time.Since(runStart).Milliseconds())
	o.logger.Info(l10n.F("Output saved to %s", config.OutputPath))
	o.logger.Info(l10n.T("Run completed successfully"))
	return result, nil
}

// writeTensor serializes the planar float buffer and finishes the run.
func (o *Orchestrator) writeTensor(config Config, res pipeline.NormalizeResult, result RunResult, runStart time.Time) (RunResult, error) {
	o.observer.PhaseStarted("encode")
	encodeStart := time.Now()
	encoded := encodeTensor(res)
	encodeElapsed := time.Since(encodeStart)
	o.observer.PhaseCompleted("encode", encodeElapsed)

	result.EncodeMs = int(encodeElapsed.Milliseconds())
	result.OutputWidth = res.Width
	result.OutputHeight = res.Height
	result.OutputBytes = len(encoded)

	if err := o.fs.WriteFile(config.OutputPath, encoded); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return result, fmt.Errorf("write output: %w", err)
	}

	result.TotalMs = int(time.Since(runStart).Milliseconds())
	o.logger.Info(l10n.F("Output saved to %s", config.OutputPath))
	o.logger.Info(l10n.T("Run completed successfully"))
	return result, nil
}
