package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// World is an ordered collection of hittables that is itself hittable.
// Members are shared references; the same shape may appear in several worlds.
type World struct {
	Objects []Hittable
}

// NewWorld creates a world from the given objects
func NewWorld(objects ...Hittable) *World {
	return &World{Objects: objects}
}

// Add appends an object. Worlds must not be modified once rendering starts.
func (w *World) Add(objects ...Hittable) {
	w.Objects = append(w.Objects, objects...)
}

// Len returns the number of members
func (w *World) Len() int {
	return len(w.Objects)
}

// Hit returns the closest hit among all members.
// Ties keep the earliest member, since later members must be strictly closer.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return closestHit(w.Objects, ray, tMin, tMax)
}

// BoundingBox merges the boxes of all bounded members.
// It returns false for an empty world or one whose members are all unbounded.
func (w *World) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return mergeBoxes(w.Objects, time0, time1)
}

// closestHit scans objects in order, shrinking the search range as hits are found
func closestHit(objects []Hittable, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit && (closest == nil || hit.T < closest.T) {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// mergeBoxes accumulates member boxes, seeded from the first one that exists
func mergeBoxes(objects []Hittable, time0, time1 float64) (core.AABB, bool) {
	var result core.AABB
	found := false

	for _, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			continue
		}
		if !found {
			result = box
			found = true
			continue
		}
		result = result.Merge(box)
	}

	return result, found
}
