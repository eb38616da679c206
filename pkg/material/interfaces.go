package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// Material describes how a surface emits and scatters light.
// Implementations are immutable once built and may be shared by many shapes
// and read from many render goroutines at once.
type Material interface {
	// Emit returns self-luminous radiance at the surface point, black for non-emitters
	Emit(u, v float64, point core.Vec3) core.Vec3

	// Scatter either absorbs the ray (false) or returns an attenuation and outgoing ray
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation core.Vec3 // Component-wise color multiplier
	Scattered   core.Ray  // The scattered ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface parametrization at the hit point
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, facing against the incoming ray
	FrontFace bool      // Whether ray hit the outward side
	Material  Material  // Material of the hit object (shared, not owned)
}

// NewHitRecord builds a hit record, orienting the outward normal against the ray
func NewHitRecord(ray core.Ray, t, u, v float64, point, outwardNormal core.Vec3, mat Material) *HitRecord {
	hit := &HitRecord{
		T:        t,
		U:        u,
		V:        v,
		Point:    point,
		Material: mat,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// UV returns the surface parametrization as a Vec2
func (h *HitRecord) UV() core.Vec2 {
	return core.NewVec2(h.U, h.V)
}

// NoEmission can be embedded by materials that do not emit light
type NoEmission struct{}

// Emit returns black
func (NoEmission) Emit(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
