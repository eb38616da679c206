package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/loaders"
	"github.com/df07/go-path-tracer/pkg/renderer"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// Config holds all command line options
type Config struct {
	SceneType   string
	Accelerator string
	Integrator  string
	Samples     int
	MaxDepth    int
	MaxPasses   int
	NumWorkers  int
	Width       int
	OutputDir   string
	Help        bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}

	logger := renderer.NewDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags and returns configuration
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene name (see -help for the list)")
	flag.StringVar(&config.Accelerator, "accel", string(scene.AcceleratorBVH), "Acceleration structure: 'list', 'bvh' or 'rtree'")
	flag.StringVar(&config.Integrator, "integrator", string(scene.IntegratorPath),
		"Integrator: 'path', 'path-iterative', 'diffuse-unit-vector', 'diffuse-hemisphere', 'diffuse-unit-sphere' or 'diffuse-cosine'")
	flag.IntVar(&config.Samples, "samples", 0, "Maximum samples per pixel (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flag.IntVar(&config.MaxPasses, "passes", 7, "Number of progressive passes")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto)")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.StringVar(&config.OutputDir, "output", "output", "Directory renders are written to")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

// showHelp displays help information
func showHelp() {
	fmt.Println("Progressive Path Tracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
}

// createScene builds the named scene, applies overrides and indexes it with the chosen accelerator
func createScene(config Config) (*scene.Scene, error) {
	accel, err := scene.ParseAccelerator(config.Accelerator)
	if err != nil {
		return nil, err
	}
	kind, err := scene.ParseIntegrator(config.Integrator)
	if err != nil {
		return nil, err
	}

	var overrides []renderer.CameraConfig
	if config.Width > 0 {
		overrides = append(overrides, renderer.CameraConfig{Width: config.Width})
	}

	s, err := scene.Create(config.SceneType, overrides...)
	if err != nil {
		return nil, err
	}

	s.SamplingConfig = s.SamplingConfig.Merge(renderer.SamplingConfig{
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
	})
	if err := s.UseIntegrator(kind); err != nil {
		return nil, err
	}

	if err := s.BuildAccelerator(accel); err != nil {
		return nil, fmt.Errorf("scene %q: %w", config.SceneType, err)
	}
	return s, nil
}

// run renders the configured scene progressively and saves the final pass
func run(ctx context.Context, config Config, logger core.Logger) error {
	s, err := createScene(config)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d objects, %s accelerator, %s integrator)\n",
		config.SceneType, s.GetPrimitiveCount(), config.Accelerator, config.Integrator)

	startTime := time.Now()
	img, stats, err := renderProgressive(ctx, s, config, logger)
	if err != nil {
		return err
	}
	logger.Printf("Render completed in %v\n", time.Since(startTime))
	logger.Printf("Samples per pixel: %.1f (range %d - %d), average luminance %.3f\n",
		stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed, renderer.CalculateAverageLuminance(img))

	filename, err := saveRender(img, config.OutputDir, config.SceneType, time.Now())
	if err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// renderProgressive drains the pass channel and returns the last completed pass
func renderProgressive(ctx context.Context, s *scene.Scene, config Config, logger core.Logger) (*image.RGBA, renderer.RenderStats, error) {
	progressiveConfig := renderer.ProgressiveConfig{
		MaxSamplesPerPixel: s.SamplingConfig.SamplesPerPixel,
		MaxPasses:          config.MaxPasses,
		NumWorkers:         config.NumWorkers,
	}
	raytracer := renderer.NewProgressiveRaytracer(s, progressiveConfig, logger)

	passChan, _, errChan := raytracer.RenderProgressive(ctx, renderer.RenderOptions{})

	var last *renderer.PassResult
	for pass := range passChan {
		logger.Printf("Pass %d complete: %.1f samples per pixel\n", pass.PassNumber, pass.Stats.AverageSamples)
		last = &pass
	}
	if err := <-errChan; err != nil && !errors.Is(err, context.Canceled) {
		return nil, renderer.RenderStats{}, err
	}
	if last == nil {
		return nil, renderer.RenderStats{}, errors.New("no passes completed")
	}
	return last.Image, last.Stats, nil
}

// saveRender writes img to outputDir/sceneName/render_<timestamp>.png
func saveRender(img image.Image, outputDir, sceneName string, now time.Time) (string, error) {
	dir := filepath.Join(outputDir, sceneName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
	if err := loaders.SavePNG(filename, img); err != nil {
		return "", fmt.Errorf("saving render: %w", err)
	}
	return filename, nil
}
