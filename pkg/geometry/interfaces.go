package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Hittable is the intersection contract shared by every shape and by aggregates of shapes.
// Implementations are pure: Hit never mutates the receiver, so a built scene can be
// traced from many goroutines at once.
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns a box covering every position the shape occupies during
	// [time0, time1], or false if the shape is unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
