package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0 to
// Center1 at Time1. Rays cast outside [Time0, Time1] never hit it.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// CenterAt returns the interpolated center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	span := s.Time1 - s.Time0
	if span == 0 {
		return s.Center0
	}
	fraction := (time - s.Time0) / span
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if ray.Time < s.Time0 || ray.Time > s.Time1 {
		return nil, false
	}
	return hitSphere(ray, s.CenterAt(ray.Time), s.Radius, s.Material, tMin, tMax)
}

// BoundingBox merges the sphere's boxes at the two ends of the interval.
// Motion is linear, so the endpoint boxes bound the whole sweep.
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	start := sphereBox(s.CenterAt(time0), s.Radius)
	end := sphereBox(s.CenterAt(time1), s.Radius)
	return start.Merge(end), true
}
