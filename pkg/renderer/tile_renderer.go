package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/integrator"
)

// TileRenderer samples rectangular pixel regions of a scene with one integrator
type TileRenderer struct {
	scene      Scene
	integrator integrator.Integrator
}

// NewTileRenderer creates a tile renderer
func NewTileRenderer(scene Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{scene: scene, integrator: integratorInst}
}

// RenderTileBounds tops every pixel in bounds up to config.SamplesPerPixel samples,
// stopping early for pixels that have converged. pixelStats is indexed [y][x] in image
// coordinates; random drives both the camera and the integrator.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand, config SamplingConfig) RenderStats {
	camera := tr.scene.GetCamera()
	world := tr.scene.GetWorld()
	sampler := core.NewRandomSampler(random)

	target := config.SamplesPerPixel
	minSamples := max(1, int(float64(target)*config.AdaptiveMinSamples))
	stats := newRenderStats(bounds.Dx()*bounds.Dy(), target)

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			pixel := &pixelStats[j][i]
			before := pixel.SampleCount

			for pixel.SampleCount < target && !pixel.Converged(minSamples, config.AdaptiveThreshold) {
				pixel.AddSample(tr.integrator.RayColor(camera.GetRay(i, j, random), world, sampler))
			}
			stats.record(pixel.SampleCount - before)
		}
	}

	stats.finalize()
	return stats
}
