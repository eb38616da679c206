package core

import (
	"math"
	"math/rand"
)

// Sampler supplies uniform random numbers in [0, 1) to scattering code.
// Materials and integrators draw all of their randomness from one.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler draws from a math/rand generator.
// It is not safe for concurrent use; each render goroutine owns its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler wraps random
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

func (r *RandomSampler) Get2D() Vec2 {
	return Vec2{X: r.random.Float64(), Y: r.random.Float64()}
}

func (r *RandomSampler) Get3D() Vec3 {
	return Vec3{X: r.random.Float64(), Y: r.random.Float64(), Z: r.random.Float64()}
}

// sphericalDirection returns the unit vector with the given polar cosine and azimuth
func sphericalDirection(cosTheta, phi float64) Vec3 {
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	return Vec3{X: sinTheta * math.Cos(phi), Y: sinTheta * math.Sin(phi), Z: cosTheta}
}

// SampleOnUnitSphere maps a uniform 2D sample to a uniform direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	return sphericalDirection(1-2*sample.X, 2*math.Pi*sample.Y)
}

// SamplePointInUnitSphere maps a uniform 3D sample to a uniform point in the unit ball.
// The cube root of the radius sample keeps the density constant per volume.
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	r := math.Cbrt(sample.X)
	return sphericalDirection(2*sample.Z-1, 2*math.Pi*sample.Y).Multiply(r)
}

// SampleCosineHemisphere maps a uniform 2D sample to a cosine-weighted direction about
// the unit normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	local := sphericalDirection(math.Sqrt(1-sample.X), 2*math.Pi*sample.Y)

	// Orthonormal basis with normal as the local z axis
	helper := NewVec3(1, 0, 0)
	if math.Abs(normal.X) > 0.9 {
		helper = NewVec3(0, 1, 0)
	}
	tangent := helper.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return tangent.Multiply(local.X).Add(bitangent.Multiply(local.Y)).Add(normal.Multiply(local.Z))
}
