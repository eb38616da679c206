package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// generateTexture fills a width x height image from a per-pixel function.
// y = 0 is the top row.
func generateTexture(width, height int, pixel func(x, y int) core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, 0, width*height)
	for y := range height {
		for x := range width {
			pixels = append(pixels, pixel(x, y))
		}
	}
	return NewImageTexture(width, height, pixels)
}

// NewCheckerboardTexture creates an image of alternating checkSize-pixel squares,
// with color1 in the top left corner
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	checkSize = max(1, checkSize)
	return generateTexture(width, height, func(x, y int) core.Vec3 {
		if (x/checkSize+y/checkSize)%2 == 0 {
			return color1
		}
		return color2
	})
}

// NewUVDebugTexture colors each texel by its texture coordinate:
// u in the red channel, v in the green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	uScale := 1.0 / float64(max(1, width-1))
	vScale := 1.0 / float64(max(1, height-1))
	return generateTexture(width, height, func(x, y int) core.Vec3 {
		return core.NewVec3(float64(x)*uScale, 1-float64(y)*vScale, 0)
	})
}

// NewGradientTexture blends from top at the top row to bottom at the bottom row
func NewGradientTexture(width, height int, top, bottom core.Vec3) *ImageTexture {
	scale := 1.0 / float64(max(1, height-1))
	return generateTexture(width, height, func(x, y int) core.Vec3 {
		t := float64(y) * scale
		return top.Multiply(1 - t).Add(bottom.Multiply(t))
	})
}
