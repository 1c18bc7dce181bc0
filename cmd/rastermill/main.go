// Package main provides the CLI entry point for rastermill.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/rastermill/pkg/adapters/imagecodec"
	"github.com/user/rastermill/pkg/adapters/logger"
	"github.com/user/rastermill/pkg/adapters/observer"
	"github.com/user/rastermill/pkg/adapters/osfilesystem"
	"github.com/user/rastermill/pkg/config"
	"github.com/user/rastermill/pkg/juxtapose"
	"github.com/user/rastermill/pkg/orchestrator"
	"github.com/user/rastermill/pkg/pipeline"
	"github.com/user/rastermill/pkg/ports"
	"github.com/user/rastermill/pkg/raster"
	"github.com/user/rastermill/pkg/stages/blur"
	"github.com/user/rastermill/pkg/stages/downscale"
	"github.com/user/rastermill/pkg/stages/normalize"
	"github.com/user/rastermill/pkg/summarizer"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "rastermill",
		Usage:   l10n.T("Resample and filter raster images"),
		Version: version,
		Commands: []*cli.Command{
			downscaleCommand(),
			blurCommand(),
			normalizeCommand(),
			juxtaposeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commonFlags are shared by every processing command.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Required: true,
			Usage:    l10n.T("Output file path (required)"),
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: l10n.T("Load settings from a YAML file"),
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: l10n.T("Number of row workers (default: CPU count)"),
		},
		&cli.StringFlag{
			Name:  "summary",
			Usage: l10n.T("Output execution summary to file (Markdown format)"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Value:   "info",
			Usage:   l10n.T("Log level (debug, info, warn, error)"),
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"Q"},
			Usage:   l10n.T("Suppress all log output"),
		},
	}
}

func geometryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"W"},
			Usage:   l10n.T("Target canvas width (default: 256)"),
		},
		&cli.IntFlag{
			Name:    "height",
			Aliases: []string{"H"},
			Usage:   l10n.T("Target canvas height (default: 256)"),
		},
	}
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  "sigma",
			Usage: l10n.T("Gaussian sigma (default: 1.0)"),
		},
		&cli.IntFlag{
			Name:    "kernel",
			Aliases: []string{"k"},
			Usage:   l10n.T("Gaussian kernel side length, odd (default: 5)"),
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   l10n.T("Output image format (png, webp)"),
	}
}

func downscaleCommand() *cli.Command {
	flags := commonFlags()
	flags = append(flags, geometryFlags()...)
	flags = append(flags, filterFlags()...)
	flags = append(flags, formatFlag(),
		&cli.BoolFlag{
			Name:    "antialias",
			Aliases: []string{"a"},
			Usage:   l10n.T("Blur corner samples before blending"),
		},
		&cli.BoolFlag{
			Name:  "fast",
			Usage: l10n.T("Sample through the flat byte backing"),
		},
	)

	return &cli.Command{
		Name:      "downscale",
		Usage:     l10n.T("Scale an image onto a fixed canvas with center crop"),
		ArgsUsage: "INPUT",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			op := orchestrator.OpDownscale
			if c.Bool("antialias") {
				op = orchestrator.OpAntialiased
				if c.Bool("fast") {
					op = orchestrator.OpAntialiasedFast
				}
			}
			return runOperation(c, op)
		},
	}
}

func blurCommand() *cli.Command {
	flags := commonFlags()
	flags = append(flags, filterFlags()...)
	flags = append(flags, formatFlag())

	return &cli.Command{
		Name:      "blur",
		Usage:     l10n.T("Apply a same-size Gaussian blur"),
		ArgsUsage: "INPUT",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			return runOperation(c, orchestrator.OpBlur)
		},
	}
}

func normalizeCommand() *cli.Command {
	flags := commonFlags()
	flags = append(flags, geometryFlags()...)

	return &cli.Command{
		Name:      "normalize",
		Usage:     l10n.T("Produce a channel-planar float tensor for model input"),
		ArgsUsage: "INPUT",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			return runOperation(c, orchestrator.OpNormalize)
		},
	}
}

// buildConfig merges the optional config file with command-line flags.
// Flags win over the file, the file wins over defaults.
func buildConfig(c *cli.Context, op orchestrator.Operation) (config.Config, error) {
	cfg := config.Defaults()

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.Operation = string(op)
	cfg.InputPath = c.Args().First()
	cfg.OutputPath = c.String("output")

	if c.IsSet("width") {
		cfg.TargetWidth = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.TargetHeight = c.Int("height")
	}
	if c.IsSet("sigma") {
		cfg.Sigma = c.Float64("sigma")
	}
	if c.IsSet("kernel") {
		cfg.KernelSize = c.Int("kernel")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("summary") {
		cfg.SummaryPath = c.String("summary")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if cfg.InputPath == "" {
		return cfg, fmt.Errorf("%s", l10n.T("Input image argument is required"))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func buildLogger(c *cli.Context, level string) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

// runOperation wires the adapters and stages and executes one run.
func runOperation(c *cli.Context, op orchestrator.Operation) error {
	cfg, err := buildConfig(c, op)
	if err != nil {
		return err
	}

	log := buildLogger(c, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	fs := osfilesystem.New()
	codec := imagecodec.New()
	recorder := observer.NewRecorder(observer.NewLog(log))

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	orch := orchestrator.New(
		downscale.NewStage(log, workers),
		blur.NewStage(log, workers),
		normalize.NewStage(log, workers),
		codec,
		codec,
		fs,
		recorder,
		log,
	)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	if cfg.SummaryPath != "" {
		if err := writeSummary(cfg, workers, result); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", cfg.SummaryPath))
		}
	}

	return nil
}

func writeSummary(cfg config.Config, workers int, result orchestrator.RunResult) error {
	summary := summarizer.NewBuilder().
		WithInput(cfg.InputPath, result.InputWidth, result.InputHeight, int64(result.InputBytes)).
		WithOutput(summarizer.OutputInfo{
			Path:   cfg.OutputPath,
			Format: cfg.Format,
			Width:  result.OutputWidth,
			Height: result.OutputHeight,
			Bytes:  int64(result.OutputBytes),
		}).
		WithTiming(result.DecodeMs, result.ProcessMs, result.EncodeMs, result.TotalMs).
		WithSettings(summarizer.Settings{
			Operation:  cfg.Operation,
			Sigma:      cfg.Sigma,
			KernelSize: cfg.KernelSize,
			Workers:    workers,
		}).
		Build()

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(formatter).Write(cfg.SummaryPath, summary)
}

func juxtaposeCommand() *cli.Command {
	flags := commonFlags()
	flags = append(flags, geometryFlags()...)
	flags = append(flags, filterFlags()...)
	flags = append(flags, formatFlag(),
		&cli.StringFlag{
			Name:  "operation",
			Value: string(orchestrator.OpAntialiased),
			Usage: l10n.T("Operation shown on the right panel (downscale, antialiased, blur)"),
		},
		&cli.IntFlag{
			Name:  "panel-width",
			Usage: l10n.T("Width each panel is scaled to (default: 256)"),
		},
	)

	return &cli.Command{
		Name:      "juxtapose",
		Usage:     l10n.T("Render a before/after comparison sheet"),
		ArgsUsage: "INPUT",
		Flags:     flags,
		Action:    runJuxtapose,
	}
}

// runJuxtapose decodes the input, applies the chosen operation and
// writes a before/after sheet.
func runJuxtapose(c *cli.Context) error {
	op := orchestrator.Operation(c.String("operation"))
	cfg, err := buildConfig(c, op)
	if err != nil {
		return err
	}

	log := buildLogger(c, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fs := osfilesystem.New()
	codec := imagecodec.New()

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	data, err := fs.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	img, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	processed, err := applyOperation(ctx, log, workers, op, cfg, img)
	if err != nil {
		return err
	}

	opts := juxtapose.DefaultOptions()
	opts.RightLabel = string(op)
	if c.IsSet("panel-width") {
		opts.PanelWidth = c.Int("panel-width")
	}

	sheet, err := juxtapose.Render(img, processed, opts)
	if err != nil {
		return fmt.Errorf("render sheet: %w", err)
	}

	encoded, err := codec.Encode(sheet.Pix, sheet.Width, sheet.Height, ports.ParseImageFormat(cfg.Format))
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	if err := fs.WriteFile(cfg.OutputPath, encoded); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info(l10n.F("Output saved to %s", cfg.OutputPath))
	return nil
}

func applyOperation(ctx context.Context, log ports.Logger, workers int, op orchestrator.Operation, cfg config.Config, img *raster.Image) (*raster.Image, error) {
	switch op {
	case orchestrator.OpBlur:
		input := pipeline.DefaultBlurInput()
		input.Image = img
		input.Sigma = cfg.Sigma
		input.KernelSize = cfg.KernelSize
		result, err := blur.NewStage(log, workers).Execute(ctx, input)
		if err != nil {
			return nil, err
		}
		return raster.NewImage(result.Pix, result.Width, result.Height)
	case orchestrator.OpDownscale, orchestrator.OpAntialiased, orchestrator.OpAntialiasedFast:
		input := pipeline.DefaultDownscaleInput()
		input.Image = img
		input.TargetWidth = cfg.TargetWidth
		input.TargetHeight = cfg.TargetHeight
		input.Antialias = op != orchestrator.OpDownscale
		input.Sigma = cfg.Sigma
		input.KernelSize = cfg.KernelSize
		input.FastPath = op == orchestrator.OpAntialiasedFast
		result, err := downscale.NewStage(log, workers).Execute(ctx, input)
		if err != nil {
			return nil, err
		}
		return raster.NewImage(result.Pix, result.Width, result.Height)
	default:
		return nil, fmt.Errorf("%s", l10n.F("Operation %s cannot be juxtaposed", op))
	}
}
