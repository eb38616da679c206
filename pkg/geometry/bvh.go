package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 8

// bvhEntry pairs an object with its box so boxes are computed once at build time.
// index is the object's position in the input, used to break ties.
type bvhEntry struct {
	index  int
	object Hittable
	box    core.AABB
}

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []Hittable // Objects for leaf nodes (nil for internal nodes)
	entries     []bvhEntry
}

// BVH is a Bounding Volume Hierarchy over the bounded members of a scene.
// Members without a bounding box are kept aside and tested linearly.
// Equal-t hits resolve to the member that came first in the input, as in World.
type BVH struct {
	Root      *BVHNode
	Unbounded []Hittable
	unbounded []bvhEntry
}

// NewBVH builds a BVH over objects using their boxes for the shutter interval [time0, time1]
func NewBVH(objects []Hittable, time0, time1 float64) *BVH {
	bvh := &BVH{}

	entries := make([]bvhEntry, 0, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			bvh.Unbounded = append(bvh.Unbounded, object)
			bvh.unbounded = append(bvh.unbounded, bvhEntry{index: i, object: object})
			continue
		}
		entries = append(entries, bvhEntry{index: i, object: object, box: box})
	}

	if len(entries) > 0 {
		bvh.Root = buildBVH(entries)
	}
	return bvh
}

// buildBVH recursively builds the BVH using median splits along the longest axis
func buildBVH(entries []bvhEntry) *BVHNode {
	boundingBox := entries[0].box
	for _, entry := range entries[1:] {
		boundingBox = boundingBox.Merge(entry.box)
	}

	if len(entries) <= leafThreshold {
		return newLeaf(boundingBox, entries)
	}

	axis := boundingBox.LongestAxis()
	minVal, maxVal := axisRange(boundingBox, axis)
	if maxVal <= minVal {
		return newLeaf(boundingBox, entries)
	}
	splitPos := (minVal + maxVal) * 0.5

	var left, right []bvhEntry
	for _, entry := range entries {
		if axisValue(entry.box.Center(), axis) < splitPos {
			left = append(left, entry)
		} else {
			right = append(right, entry)
		}
	}

	// Ensure we don't create empty partitions
	if len(left) == 0 || len(right) == 0 {
		return newLeaf(boundingBox, entries)
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

func newLeaf(boundingBox core.AABB, entries []bvhEntry) *BVHNode {
	objects := make([]Hittable, len(entries))
	for i, entry := range entries {
		objects[i] = entry.object
	}
	return &BVHNode{BoundingBox: boundingBox, Objects: objects, entries: entries}
}

func axisRange(box core.AABB, axis int) (float64, float64) {
	return axisValue(box.Min, axis), axisValue(box.Max, axis)
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// bvhHit is the best hit found so far and the input index of the member that produced it
type bvhHit struct {
	record *material.HitRecord
	index  int
}

// limit is the search bound for the rest of the traversal. It stays inclusive of the
// current t so an earlier member at the same t can still replace the current one.
func (best bvhHit) limit(tMax float64) float64 {
	if best.record == nil {
		return tMax
	}
	return best.record.T
}

func (best bvhHit) improvedBy(hit *material.HitRecord, index int) bool {
	if best.record == nil || hit.T < best.record.T {
		return true
	}
	return hit.T == best.record.T && index < best.index
}

func scanEntries(entries []bvhEntry, ray core.Ray, tMin, tMax float64, best bvhHit) bvhHit {
	for _, entry := range entries {
		if hit, isHit := entry.object.Hit(ray, tMin, best.limit(tMax)); isHit && best.improvedBy(hit, entry.index) {
			best = bvhHit{record: hit, index: entry.index}
		}
	}
	return best
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	best := scanEntries(bvh.unbounded, ray, tMin, tMax, bvhHit{})
	if bvh.Root != nil {
		best = bvh.hitNode(bvh.Root, ray, tMin, tMax, best)
	}
	return best.record, best.record != nil
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64, best bvhHit) bvhHit {
	if !node.BoundingBox.Hit(ray, tMin, best.limit(tMax)) {
		return best
	}

	if node.Objects != nil {
		return scanEntries(node.entries, ray, tMin, tMax, best)
	}

	best = bvh.hitNode(node.Left, ray, tMin, tMax, best)
	return bvh.hitNode(node.Right, ray, tMin, tMax, best)
}

// BoundingBox returns the root box. Like World, unbounded members do not contribute.
func (bvh *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if bvh.Root == nil {
		return core.AABB{}, false
	}
	return bvh.Root.BoundingBox, true
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes   int
	leafNodes    int
	maxDepth     int
	totalObjects int
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	stats := bvhStats{}
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

func collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++
	stats.maxDepth = max(stats.maxDepth, depth)

	if node.Objects != nil {
		stats.leafNodes++
		stats.totalObjects += len(node.Objects)
		return
	}
	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
