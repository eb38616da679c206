package material

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// Dielectric is a transparent material such as glass or water.
// Each scatter picks reflection or refraction with Fresnel probability.
type Dielectric struct {
	NoEmission
	RefractiveIndex float64   // Index of refraction relative to the surrounding medium
	Tint            core.Vec3 // Attenuation per interaction, white for clear glass
}

// NewDielectric creates clear glass with the given refractive index
func NewDielectric(refractiveIndex float64) *Dielectric {
	return NewTintedDielectric(refractiveIndex, core.NewVec3(1, 1, 1))
}

// NewTintedDielectric creates colored glass
func NewTintedDielectric(refractiveIndex float64, tint core.Vec3) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Tint: tint}
}

// Scatter implements the Material interface
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Ratio of incident to transmitted index
	eta := d.RefractiveIndex
	if hit.FrontFace {
		eta = 1.0 / d.RefractiveIndex
	}

	in := rayIn.Direction.Normalize()
	cosTheta := math.Min(in.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	var direction core.Vec3
	switch {
	case eta*sinTheta > 1.0: // total internal reflection
		direction = in.Reflect(hit.Normal)
	case Reflectance(cosTheta, eta) > sampler.Get1D():
		direction = in.Reflect(hit.Normal)
	default:
		direction = in.Refract(hit.Normal, eta)
	}

	return ScatterResult{
		Attenuation: d.Tint,
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
	}, true
}

// Reflectance is Schlick's approximation of the Fresnel reflectance
func Reflectance(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
