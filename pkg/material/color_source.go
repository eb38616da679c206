package material

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two sources in a 3D checker pattern
type CheckerTexture struct {
	Scale float64 // Frequency of the pattern; larger values give smaller checks
	Odd   ColorSource
	Even  ColorSource
}

// NewCheckerTexture creates a solid-color 3D checker
func NewCheckerTexture(scale float64, odd, even core.Vec3) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Odd: NewSolidColor(odd), Even: NewSolidColor(even)}
}

// Evaluate picks the odd or even source from the sign of the sine product at point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
