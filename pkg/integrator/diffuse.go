package integrator

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

// DiffuseMode selects how DiffuseIntegrator picks bounce directions
type DiffuseMode int

const (
	// UnitVector bounces towards normal + a random unit vector (Lambertian)
	UnitVector DiffuseMode = iota
	// Hemisphere bounces uniformly in the hemisphere around the normal
	Hemisphere
	// UnitSphere bounces towards normal + a random point in the unit sphere
	UnitSphere
	// Cosine samples the cosine-weighted hemisphere directly
	Cosine
)

// String returns the mode name
func (m DiffuseMode) String() string {
	switch m {
	case UnitVector:
		return "unit-vector"
	case Hemisphere:
		return "hemisphere"
	case UnitSphere:
		return "unit-sphere"
	case Cosine:
		return "cosine"
	default:
		return "unknown"
	}
}

// diffuseAttenuation is the fraction of light kept at every bounce
const diffuseAttenuation = 0.5

// DiffuseIntegrator ignores materials and shades every surface as a 50% grey
// diffuser under a sky gradient. Useful for checking geometry and normals.
type DiffuseIntegrator struct {
	Mode     DiffuseMode
	MaxDepth int
}

// NewDiffuseIntegrator creates a diffuse reference integrator
func NewDiffuseIntegrator(mode DiffuseMode, maxDepth int) *DiffuseIntegrator {
	return &DiffuseIntegrator{Mode: mode, MaxDepth: maxDepth}
}

// RayColor computes the color for a single camera ray
func (d *DiffuseIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return d.rayColor(ray, world, d.MaxDepth, sampler)
}

func (d *DiffuseIntegrator) rayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, tMin, tMax)
	if !isHit {
		return SkyGradient(ray)
	}

	scattered := core.NewRayAtTime(hit.Point, d.bounceDirection(hit.Normal, sampler), ray.Time)
	return d.rayColor(scattered, world, depth-1, sampler).Multiply(diffuseAttenuation)
}

func (d *DiffuseIntegrator) bounceDirection(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	switch d.Mode {
	case Hemisphere:
		return core.RandomInHemisphere(normal, sampler)
	case UnitSphere:
		return normal.Add(core.RandomInUnitSphere(sampler))
	case Cosine:
		return core.SampleCosineHemisphere(normal, sampler.Get2D())
	default:
		return normal.Add(core.RandomUnitVector(sampler))
	}
}

// SkyGradient blends white at the horizon to light blue overhead based on the
// height of the unit ray direction
func SkyGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1.0 - t).Add(blue.Multiply(t))
}
