package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width              int     // Image width in pixels
	Height             int     // Image height in pixels
	SamplesPerPixel    int     // Number of rays per pixel
	MaxDepth           int     // Maximum ray bounce depth
	AdaptiveMinSamples float64 // Fraction of SamplesPerPixel taken before adaptive stopping
	AdaptiveThreshold  float64 // Relative luminance error at which a pixel stops sampling
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:              400,
		Height:             225,
		SamplesPerPixel:    50,
		MaxDepth:           50,
		AdaptiveMinSamples: 0.15,
		AdaptiveThreshold:  0.01,
	}
}

// Merge returns a copy of c with every non-zero field of override applied
func (c SamplingConfig) Merge(override SamplingConfig) SamplingConfig {
	if override.Width != 0 {
		c.Width = override.Width
	}
	if override.Height != 0 {
		c.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		c.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		c.MaxDepth = override.MaxDepth
	}
	if override.AdaptiveMinSamples != 0 {
		c.AdaptiveMinSamples = override.AdaptiveMinSamples
	}
	if override.AdaptiveThreshold != 0 {
		c.AdaptiveThreshold = override.AdaptiveThreshold
	}
	return c
}

// Scene is what the renderer needs from a scene.
// Declared here so the scene package can depend on the renderer and not the reverse.
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Hittable // The hittable to trace against, usually an accelerator
	GetSamplingConfig() SamplingConfig
	GetIntegrator() integrator.Integrator
}

// Raytracer renders a scene on the calling goroutine
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
	tiles  *TileRenderer
	random *rand.Rand
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene) *Raytracer {
	config := scene.GetSamplingConfig()
	return &Raytracer{
		scene:  scene,
		width:  config.Width,
		height: config.Height,
		config: config,
		tiles:  NewTileRenderer(scene, scene.GetIntegrator()),
		random: rand.New(rand.NewSource(42)), // Deterministic for testing
	}
}

// SetSamplingConfig replaces the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// MergeSamplingConfig applies the non-zero fields of config
func (rt *Raytracer) MergeSamplingConfig(config SamplingConfig) {
	rt.config = rt.config.Merge(config)
}

// RenderBounds samples every pixel inside bounds up to the configured samples per pixel,
// accumulating into pixelStats (indexed [y][x] in image coordinates)
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand) RenderStats {
	return rt.tiles.RenderTileBounds(bounds, pixelStats, random, rt.config)
}

// RenderPass renders the whole image with multi-sampling and returns it
func (rt *Raytracer) RenderPass() *image.RGBA {
	bounds := image.Rect(0, 0, rt.width, rt.height)
	pixelStats := newPixelStatsGrid(rt.width, rt.height)
	rt.RenderBounds(bounds, pixelStats, rt.random)
	return renderRegion(pixelStats, bounds)
}

func newPixelStatsGrid(width, height int) [][]PixelStats {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	return pixelStats
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
