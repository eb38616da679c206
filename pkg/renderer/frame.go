package renderer

import (
	"image"
)

// renderRegion converts the accumulated pixels inside bounds to an image whose
// origin is bounds.Min. Pixels with no samples are black.
func renderRegion(pixelStats [][]PixelStats, bounds image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y && y < len(pixelStats); y++ {
		row := pixelStats[y]
		for x := bounds.Min.X; x < bounds.Max.X && x < len(row); x++ {
			img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, vec3ToColor(row[x].GetColor()))
		}
	}
	return img
}

// extractTileImage renders just the tile's pixels
func (pr *ProgressiveRaytracer) extractTileImage(tile *Tile) *image.RGBA {
	return renderRegion(pr.pixelStats, tile.Bounds)
}

// assembleCurrentImage renders the full image and summarizes the sample counts
func (pr *ProgressiveRaytracer) assembleCurrentImage(targetSamples int) (*image.RGBA, RenderStats) {
	bounds := image.Rect(0, 0, pr.width, pr.height)
	img := renderRegion(pr.pixelStats, bounds)

	stats := RenderStats{
		TotalPixels: pr.width * pr.height,
		MaxSamples:  targetSamples,
		MinSamples:  pr.config.MaxSamplesPerPixel,
	}
	for _, row := range pr.pixelStats {
		for _, pixel := range row {
			stats.TotalSamples += pixel.SampleCount
			stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
		}
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return img, stats
}
