package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// Lambertian is an ideal diffuse surface
type Lambertian struct {
	NoEmission
	Albedo ColorSource
}

// NewLambertian creates a diffuse surface with a single color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a diffuse surface whose color is looked up per hit
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always scatters. The normal plus a unit vector is cosine distributed about the normal.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Attenuation: l.Albedo.Evaluate(hit.UV(), hit.Point),
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
	}, true
}
