package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64 // A negative radius flips the normals (hollow glass)
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(ray, s.Center, s.Radius, s.Material, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// hitSphere solves the ray/sphere quadratic a·t² + 2·halfB·t + c = 0 and builds the record
func hitSphere(ray core.Ray, center core.Vec3, radius float64, mat material.Material, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one.
	// A zero-length direction gives a = 0 and non-finite roots, which are rejected.
	root := (-halfB - sqrtD) / a
	if !inRange(root, tMin, tMax) {
		root = (-halfB + sqrtD) / a
		if !inRange(root, tMin, tMax) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / radius)
	u, v := SphereUV(point.Subtract(center).Multiply(1.0 / math.Abs(radius)))

	return material.NewHitRecord(ray, root, u, v, point, outwardNormal, mat), true
}

// SphereUV maps a point on the unit sphere to equirectangular texture coordinates:
// theta = -acos(y), phi = -atan2(z, x) + π, u = phi/2π, v = theta/π.
// u covers [0, 1] and v covers [-1, 0].
func SphereUV(p core.Vec3) (u, v float64) {
	theta := -math.Acos(max(-1, min(1, p.Y)))
	phi := -math.Atan2(p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}

// inRange reports whether t is a finite parameter inside [tMin, tMax]
func inRange(t, tMin, tMax float64) bool {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return false
	}
	return t >= tMin && t <= tMax
}
