package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
)

// ErrWorkerPoolClosed is returned when a pass is started or cut short after the pool stopped
var ErrWorkerPoolClosed = errors.New("worker pool closed unexpectedly")

// ProgressiveConfig controls the pass schedule of a progressive render
type ProgressiveConfig struct {
	TileSize           int // Tile edge in pixels
	InitialSamples     int // Per-pixel target of the first, preview pass
	MaxSamplesPerPixel int // Per-pixel target of the final pass
	MaxPasses          int
	NumWorkers         int // 0 uses one worker per CPU
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: 50,
		MaxPasses:          7,
	}
}

// Merge returns a copy of c with every non-zero field of override applied
func (c ProgressiveConfig) Merge(override ProgressiveConfig) ProgressiveConfig {
	if override.TileSize != 0 {
		c.TileSize = override.TileSize
	}
	if override.InitialSamples != 0 {
		c.InitialSamples = override.InitialSamples
	}
	if override.MaxSamplesPerPixel != 0 {
		c.MaxSamplesPerPixel = override.MaxSamplesPerPixel
	}
	if override.MaxPasses != 0 {
		c.MaxPasses = override.MaxPasses
	}
	if override.NumWorkers != 0 {
		c.NumWorkers = override.NumWorkers
	}
	return c
}

// ProgressiveRaytracer renders an image in passes of increasing sample count.
// Pixel accumulators persist across passes, so each pass only adds the missing samples.
type ProgressiveRaytracer struct {
	scene         Scene
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile
	currentPass   int
	pixelStats    [][]PixelStats // Image coordinates, shared by all workers
	workerPool    *WorkerPool
	logger        core.Logger
}

// NewProgressiveRaytracer sizes the image from the scene's sampling config.
// A nil logger logs to stdout.
func NewProgressiveRaytracer(scene Scene, config ProgressiveConfig, logger core.Logger) *ProgressiveRaytracer {
	config = DefaultProgressiveConfig().Merge(config)
	config.MaxPasses = max(1, config.MaxPasses)
	config.InitialSamples = min(config.InitialSamples, config.MaxSamplesPerPixel)
	if config.TileSize <= 0 {
		config.TileSize = DefaultProgressiveConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	sampling := scene.GetSamplingConfig()
	tiles := NewTileGrid(sampling.Width, sampling.Height, config.TileSize)

	return &ProgressiveRaytracer{
		scene:      scene,
		width:      sampling.Width,
		height:     sampling.Height,
		config:     config,
		tiles:      tiles,
		pixelStats: newPixelStatsGrid(sampling.Width, sampling.Height),
		workerPool: NewWorkerPool(scene, len(tiles), config.NumWorkers),
		logger:     logger,
	}
}

// getSamplesForPass returns the cumulative per-pixel target after passNumber passes.
// Pass 1 is the preview, the last pass reaches the maximum, and passes in between
// divide the remainder evenly.
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	c := pr.config
	switch {
	case c.MaxPasses == 1, passNumber >= c.MaxPasses:
		return c.MaxSamplesPerPixel
	case passNumber == 1:
		return c.InitialSamples
	}
	step := (c.MaxSamplesPerPixel - c.InitialSamples) / (c.MaxPasses - 1)
	return c.InitialSamples + (passNumber-1)*step
}

// RenderPass renders one pass on the worker pool, then assembles the whole image.
// tileCallback, if not nil, is invoked on the calling goroutine as each tile finishes.
func (pr *ProgressiveRaytracer) RenderPass(passNumber int, tileCallback func(TileCompletionResult)) (*image.RGBA, RenderStats, error) {
	pr.currentPass = passNumber
	target := pr.getSamplesForPass(passNumber)

	if pr.workerPool.Stopped() {
		return nil, RenderStats{}, fmt.Errorf("pass %d: %w", passNumber, ErrWorkerPoolClosed)
	}
	pr.logger.Printf("Pass %d: Target %d samples per pixel (using %d workers)...\n",
		passNumber, target, pr.workerPool.GetNumWorkers())

	pr.workerPool.Start()
	for id, tile := range pr.tiles {
		err := pr.workerPool.SubmitTask(TileTask{
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: target,
			TaskID:        id,
			PixelStats:    pr.pixelStats,
		})
		if err != nil {
			return nil, RenderStats{}, fmt.Errorf("pass %d tile %d: %w", passNumber, id, err)
		}
	}

	for done := 1; done <= len(pr.tiles); done++ {
		result, ok := pr.workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("pass %d: %w", passNumber, ErrWorkerPoolClosed)
		}
		if result.Error != nil {
			return nil, RenderStats{}, fmt.Errorf("pass %d tile %d: %w", passNumber, result.TaskID, result.Error)
		}

		tile := pr.tiles[result.TaskID]
		tile.PassesCompleted++
		if tileCallback == nil {
			continue
		}

		tileX, tileY := tile.tileCoords(pr.config.TileSize)
		tileCallback(TileCompletionResult{
			TileX:       tileX,
			TileY:       tileY,
			TileImage:   pr.extractTileImage(tile),
			PassNumber:  passNumber,
			TileNumber:  done,
			TotalTiles:  len(pr.tiles),
			TotalPasses: pr.config.MaxPasses,
		})
	}

	img, stats := pr.assembleCurrentImage(target)
	return img, stats, nil
}

// PassResult is emitted once per completed pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// TileCompletionResult describes one finished tile
type TileCompletionResult struct {
	TileX, TileY int         // Grid position, not pixels
	TileImage    *image.RGBA // Just this tile
	PassNumber   int

	TileNumber  int // 1-based completion order within the pass
	TotalTiles  int
	TotalPasses int
}

// RenderOptions configures RenderProgressive
type RenderOptions struct {
	TileUpdates bool // Emit a TileCompletionResult per finished tile
}

// RenderProgressive runs every pass on a background goroutine.
//
// Passes arrive on the first channel, which closes when rendering ends. Tile events arrive
// on the second when options.TileUpdates is set; otherwise it is closed from the start, and
// events are dropped if the reader falls behind. At most one error (including ctx.Err() after
// cancellation) is sent on the third before it closes. The worker pool is closed on return.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context, options RenderOptions) (<-chan PassResult, <-chan TileCompletionResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	tileChan := make(chan TileCompletionResult, 100)
	errChan := make(chan error, 1)

	var onTile func(TileCompletionResult)
	if options.TileUpdates {
		onTile = func(result TileCompletionResult) {
			select {
			case tileChan <- result:
			default:
			}
		}
	} else {
		close(tileChan)
	}

	go func() {
		defer close(passChan)
		if options.TileUpdates {
			defer close(tileChan)
		}
		defer close(errChan)
		defer pr.Close()

		pr.logger.Printf("Starting progressive rendering with %d passes...\n", pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			if err := ctx.Err(); err != nil {
				pr.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- err
				return
			}

			start := time.Now()
			img, stats, err := pr.RenderPass(pass, onTile)
			if err != nil {
				errChan <- err
				return
			}

			reached := int(stats.AverageSamples) >= pr.config.MaxSamplesPerPixel
			pr.logger.Printf("Pass %d completed in %v (actual: %.1f samples/pixel)\n",
				pass, time.Since(start), stats.AverageSamples)

			select {
			case passChan <- PassResult{PassNumber: pass, Image: img, Stats: stats, IsLast: reached || pass == pr.config.MaxPasses}:
			case <-ctx.Done():
				return
			}

			if reached {
				pr.logger.Printf("Reached maximum samples per pixel (%d), stopping.\n", pr.config.MaxSamplesPerPixel)
				return
			}
		}
	}()

	return passChan, tileChan, errChan
}

// Close stops the worker pool. RenderProgressive does this itself;
// callers driving RenderPass directly must call Close when done.
func (pr *ProgressiveRaytracer) Close() {
	pr.workerPool.Stop()
}
