package core

import "math"

// PlaneThickness is the padding given to the flat axis of planar shapes so their
// bounding boxes never have zero volume
const PlaneThickness = 1e-4

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// axis returns the box extent and the ray origin/direction along one axis (0=X, 1=Y, 2=Z)
func (aabb AABB) axis(ray Ray, axis int) (min, max, origin, direction float64) {
	switch axis {
	case 0:
		return aabb.Min.X, aabb.Max.X, ray.Origin.X, ray.Direction.X
	case 1:
		return aabb.Min.Y, aabb.Max.Y, ray.Origin.Y, ray.Direction.Y
	default:
		return aabb.Min.Z, aabb.Max.Z, ray.Origin.Z, ray.Direction.Z
	}
}

// Interval clips [tMin, tMax] to the part of the ray inside the box using the slab method.
// ok is false when the ray misses the box within the range.
func (aabb AABB) Interval(ray Ray, tMin, tMax float64) (t0, t1 float64, ok bool) {
	for axis := 0; axis < 3; axis++ {
		min, max, origin, direction := aabb.axis(ray, axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-8 {
			if origin < min || origin > max {
				return 0, 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		near := (min - origin) * invDirection
		far := (max - origin) * invDirection
		if near > far {
			near, far = far, near
		}

		tMin = math.Max(tMin, near)
		tMax = math.Min(tMax, far)
		if tMin > tMax {
			return 0, 0, false
		}
	}

	return tMin, tMax, true
}

// Hit tests if a ray intersects with this AABB within [tMin, tMax]
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	_, _, ok := aabb.Interval(ray, tMin, tMax)
	return ok
}

// Merge returns the smallest AABB that bounds both this AABB and another.
// There is no identity box: callers accumulating boxes must start from a real one.
func (aabb AABB) Merge(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Pad widens every axis thinner than delta to exactly delta, keeping it centered
func (aabb AABB) Pad(delta float64) AABB {
	pad := func(min, max float64) (float64, float64) {
		if max-min >= delta {
			return min, max
		}
		mid := 0.5 * (min + max)
		return mid - delta/2, mid + delta/2
	}
	result := aabb
	result.Min.X, result.Max.X = pad(aabb.Min.X, aabb.Max.X)
	result.Min.Y, result.Max.Y = pad(aabb.Min.Y, aabb.Max.Y)
	result.Min.Z, result.Max.Z = pad(aabb.Min.Z, aabb.Max.Z)
	return result
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// Overlaps reports whether the two boxes share at least one point
func (aabb AABB) Overlaps(other AABB) bool {
	return aabb.Min.X <= other.Max.X && aabb.Max.X >= other.Min.X &&
		aabb.Min.Y <= other.Max.Y && aabb.Max.Y >= other.Min.Y &&
		aabb.Min.Z <= other.Max.Z && aabb.Max.Z >= other.Min.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
