package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// parallelEpsilon is the smallest cosine between ray and plane normal that still counts as a hit
const parallelEpsilon = 1e-8

// XYPlane is a finite rectangle [X0,X1]×[Y0,Y1] lying in the plane z = K.
// It is single sided for shading: hits always report FrontFace = true with the
// normal turned towards the incoming ray.
type XYPlane struct {
	X0, X1   float64
	Y0, Y1   float64
	K        float64
	Material material.Material
}

// NewXYPlane creates a rectangle spanning (x0, y0) to (x1, y1) at depth k
func NewXYPlane(x0, y0, x1, y1, k float64, mat material.Material) *XYPlane {
	return &XYPlane{
		X0:       x0,
		X1:       x1,
		Y0:       y0,
		Y1:       y1,
		K:        k,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the rectangle
func (p *XYPlane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	length := ray.Direction.Length()
	if length == 0 {
		return nil, false
	}
	unitDirection := ray.Direction.Multiply(1.0 / length)

	corner := core.NewVec3(p.X0, p.Y0, p.K)
	toCorner := corner.Subtract(ray.Origin)

	// Normal from the two edge vectors, turned to point away from the ray origin
	edgeU := core.NewVec3(p.X1-p.X0, 0, 0)
	edgeV := core.NewVec3(0, p.Y1-p.Y0, 0)
	normal := edgeU.Cross(edgeV).Normalize()
	if normal.Dot(toCorner) < 0 {
		normal = normal.Negate()
	}

	// Parallel rays, rays heading away and degenerate rectangles all miss
	cosine := unitDirection.Dot(normal)
	if cosine < parallelEpsilon {
		return nil, false
	}

	// Distance to the plane along the unit direction, rescaled to the ray's own parameter
	distance := toCorner.Dot(normal)
	t := distance / cosine / length
	if !inRange(t, tMin, tMax) {
		return nil, false
	}

	point := ray.At(t)
	if point.X < p.X0 || point.X > p.X1 || point.Y < p.Y0 || point.Y > p.Y1 {
		return nil, false
	}

	return &material.HitRecord{
		T:         t,
		U:         (point.X - p.X0) / (p.X1 - p.X0),
		V:         (point.Y - p.Y0) / (p.Y1 - p.Y0),
		Point:     point,
		Normal:    normal.Negate(),
		FrontFace: true,
		Material:  p.Material,
	}, true
}

// BoundingBox returns the rectangle's box, padded along z so it is never flat
func (p *XYPlane) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.NewAABBFromPoints(
		core.NewVec3(p.X0, p.Y0, p.K),
		core.NewVec3(p.X1, p.Y1, p.K),
	)
	return box.Pad(core.PlaneThickness), true
}
