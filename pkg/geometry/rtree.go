package geometry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

var (
	// ErrUnbounded is returned when an object without a bounding box is indexed
	ErrUnbounded = errors.New("object has no bounding box")
	// ErrInvalidBox is returned for inverted or NaN bounding boxes
	ErrInvalidBox = errors.New("invalid bounding box")
)

// R-tree node fan-out
const (
	rtreeMinChildren = 2
	rtreeMaxChildren = 8
)

// rtreeEntry is the spatial record stored in the tree
type rtreeEntry struct {
	index  int // Insertion order, used to keep first-member-wins ties
	object Hittable
	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial
func (e *rtreeEntry) Bounds() rtreego.Rect {
	return e.bounds
}

// RTree indexes scene members by their bounding boxes in an R-tree.
// Ray queries clip the ray to the scene box, fetch the members whose boxes meet
// the clipped segment's box, and scan those in insertion order.
type RTree struct {
	tree   *rtreego.Rtree
	bounds core.AABB
	empty  bool
}

// NewRTree indexes objects using their boxes for the shutter interval [time0, time1]
func NewRTree(objects []Hittable, time0, time1 float64) (*RTree, error) {
	r := &RTree{
		tree:  rtreego.NewTree(3, rtreeMinChildren, rtreeMaxChildren),
		empty: true,
	}

	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("rtree object %d: %w", i, ErrUnbounded)
		}
		if !box.IsValid() {
			return nil, fmt.Errorf("rtree object %d %v: %w", i, box, ErrInvalidBox)
		}

		// R-tree rectangles need a positive length on every axis
		box = box.Pad(core.PlaneThickness)
		rect, err := toRect(box)
		if err != nil {
			return nil, fmt.Errorf("rtree object %d: %w", i, err)
		}

		r.tree.Insert(&rtreeEntry{index: i, object: object, bounds: rect})
		if r.empty {
			r.bounds = box
			r.empty = false
		} else {
			r.bounds = r.bounds.Merge(box)
		}
	}

	return r, nil
}

func toRect(box core.AABB) (rtreego.Rect, error) {
	size := box.Size()
	return rtreego.NewRect(
		rtreego.Point{box.Min.X, box.Min.Y, box.Min.Z},
		[]float64{size.X, size.Y, size.Z},
	)
}

// Len returns the number of indexed objects
func (r *RTree) Len() int {
	return r.tree.Size()
}

// Query returns the objects whose boxes overlap box, in insertion order
func (r *RTree) Query(box core.AABB) []Hittable {
	// rtreego treats touching rectangles as disjoint, so widen the query slightly
	box = box.Pad(core.PlaneThickness).Expand(core.PlaneThickness)
	if r.empty || !r.bounds.Overlaps(box) {
		return nil
	}
	rect, err := toRect(box)
	if err != nil {
		return nil
	}

	found := r.tree.SearchIntersect(rect)
	entries := make([]*rtreeEntry, 0, len(found))
	for _, spatial := range found {
		entries = append(entries, spatial.(*rtreeEntry))
	}
	slices.SortFunc(entries, func(a, b *rtreeEntry) int {
		return cmp.Compare(a.index, b.index)
	})

	objects := make([]Hittable, len(entries))
	for i, entry := range entries {
		objects[i] = entry.object
	}
	return objects
}

// Hit returns the closest hit among the objects near the ray
func (r *RTree) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if r.empty {
		return nil, false
	}

	t0, t1, ok := r.bounds.Interval(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	segment := core.NewAABBFromPoints(ray.At(t0), ray.At(t1))
	if !segment.Min.IsFinite() || !segment.Max.IsFinite() {
		return nil, false
	}

	return closestHit(r.Query(segment), ray, tMin, tMax)
}

// BoundingBox returns the (padded) box of all indexed objects
func (r *RTree) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bounds, !r.empty
}
