package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission ColorSource // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material with uniform emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emissive material whose emission varies over the surface
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Emit returns the emitted light for this material
func (e *DiffuseLight) Emit(u, v float64, point core.Vec3) core.Vec3 {
	return e.Emission.Evaluate(core.NewVec2(u, v), point)
}

// Scatter absorbs every incoming ray; lights only emit
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}
