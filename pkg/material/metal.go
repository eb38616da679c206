package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// Metal reflects rays about the surface normal, optionally blurred by a fuzz radius
type Metal struct {
	NoEmission
	Albedo   ColorSource
	Fuzzness float64 // Radius of the reflection perturbation in [0, 1]; 0 is a mirror
}

// NewMetal creates a solid colored metal
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return NewTexturedMetal(NewSolidColor(albedo), fuzzness)
}

// NewTexturedMetal creates a metal whose tint comes from a texture.
// Fuzzness outside [0, 1] is clamped.
func NewTexturedMetal(albedo ColorSource, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: max(0, min(1, fuzzness))}
}

// Scatter reflects the incoming ray. Rays fuzzed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzzness > 0 {
		direction = direction.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzzness))
	}

	result := ScatterResult{
		Attenuation: m.Albedo.Evaluate(hit.UV(), hit.Point),
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
	}
	return result, direction.Dot(hit.Normal) > 0
}
