package integrator

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

// tMin skips self-intersections caused by floating point error at the hit point
const tMin = 0.001

var tMax = math.Inf(1)

// Integrator defines the interface for light transport algorithms.
// Implementations hold no per-render state and may be called from many goroutines
// as long as each goroutine passes its own sampler.
type Integrator interface {
	// RayColor computes the radiance carried back along ray
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}

// PathTracingIntegrator follows material scattering until the path is absorbed,
// leaves the scene or runs out of bounces
type PathTracingIntegrator struct {
	MaxDepth      int
	Background    core.Vec3 // Radiance of rays that miss every object
	SkyBackground bool      // Use SkyGradient instead of Background
	Iterative     bool      // Use the loop form instead of recursion
}

// NewPathTracingIntegrator creates a path tracer with a constant background
func NewPathTracingIntegrator(maxDepth int, background core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	background := pt.background
	if pt.Iterative {
		return rayColorIterative(ray, world, pt.MaxDepth, background, sampler)
	}
	return rayColor(ray, world, pt.MaxDepth, background, sampler)
}

func (pt *PathTracingIntegrator) background(ray core.Ray) core.Vec3 {
	if pt.SkyBackground {
		return SkyGradient(ray)
	}
	return pt.Background
}
