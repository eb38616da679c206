package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

func TestNewRTree_RejectsUnbounded(t *testing.T) {
	objects := []Hittable{
		NewSphere(core.NewVec3(0, 0, 0), 1, nil),
		infinitePlane{height: 0},
	}

	_, err := NewRTree(objects, 0, 1)
	if !errors.Is(err, ErrUnbounded) {
		t.Errorf("Expected ErrUnbounded, got %v", err)
	}
}

func TestNewRTree_RejectsInvalidBox(t *testing.T) {
	objects := []Hittable{
		NewSphere(core.NewVec3(0, 0, 0), 1, nil),
		NewSphere(core.NewVec3(math.NaN(), 0, 0), 1, nil),
	}

	_, err := NewRTree(objects, 0, 1)
	if !errors.Is(err, ErrInvalidBox) {
		t.Errorf("Expected ErrInvalidBox, got %v", err)
	}
}

func TestRTree_Empty(t *testing.T) {
	tree, err := NewRTree(nil, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tree.Len() != 0 {
		t.Errorf("Expected empty tree, got %d", tree.Len())
	}
	if _, isHit := tree.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1)); isHit {
		t.Error("Expected empty tree to miss")
	}
	if _, ok := tree.BoundingBox(0, 1); ok {
		t.Error("Expected empty tree to have no bounding box")
	}
}

func TestRTree_MatchesWorld(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	objects := randomSpheres(random, 200, 10)
	objects = append(objects, NewXYPlane(-5, -5, 5, 5, 2, nil))

	world := NewWorld(objects...)
	tree, err := NewRTree(objects, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tree.Len() != len(objects) {
		t.Errorf("Expected %d entries, got %d", len(objects), tree.Len())
	}

	for i, ray := range randomRays(random, 500, 10) {
		worldHit, worldIsHit := world.Hit(ray, 0.001, math.Inf(1))
		treeHit, treeIsHit := tree.Hit(ray, 0.001, math.Inf(1))

		if worldIsHit != treeIsHit {
			t.Fatalf("Ray %d: world hit=%v, rtree hit=%v", i, worldIsHit, treeIsHit)
		}
		if worldIsHit && math.Abs(worldHit.T-treeHit.T) > tolerance {
			t.Errorf("Ray %d: world t=%v, rtree t=%v", i, worldHit.T, treeHit.T)
		}
	}
}

func TestRTree_TieKeepsFirstMember(t *testing.T) {
	first := material.NewLambertian(core.NewVec3(1, 0, 0))
	second := material.NewLambertian(core.NewVec3(0, 1, 0))
	objects := []Hittable{
		NewSphere(core.NewVec3(0, 0, 0), 1, first),
		NewSphere(core.NewVec3(0, 0, 0), 1, second),
	}
	tree, err := NewRTree(objects, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, isHit := tree.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != first {
		t.Error("Expected the first member to win a tie")
	}
}

func TestRTree_Query(t *testing.T) {
	left := NewSphere(core.NewVec3(-10, 0, 0), 1, nil)
	right := NewSphere(core.NewVec3(10, 0, 0), 1, nil)
	plane := NewXYPlane(-1, -1, 1, 1, 0, nil)
	tree, err := NewRTree([]Hittable{left, right, plane}, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name string
		box  core.AABB
		want []Hittable
	}{
		{"left only", core.NewAABB(core.NewVec3(-12, -1, -1), core.NewVec3(-9, 1, 1)), []Hittable{left}},
		{"flat plane", core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5)), []Hittable{plane}},
		{"everything in order", core.NewAABB(core.NewVec3(-20, -5, -5), core.NewVec3(20, 5, 5)), []Hittable{left, right, plane}},
		{"nothing", core.NewAABB(core.NewVec3(0, 10, 0), core.NewVec3(1, 11, 1)), nil},
		{"outside the scene box", core.NewAABB(core.NewVec3(30, 30, 30), core.NewVec3(31, 31, 31)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.Query(tt.box)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d objects, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Object %d: unexpected member", i)
				}
			}
		})
	}
}

func TestRTree_BoundingBox(t *testing.T) {
	tree, err := NewRTree([]Hittable{
		NewSphere(core.NewVec3(-10, 0, 0), 1, nil),
		NewSphere(core.NewVec3(10, 0, 0), 1, nil),
	}, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	box, ok := tree.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	want := core.NewAABB(core.NewVec3(-11, -1, -1), core.NewVec3(11, 1, 1))
	if !vecNear(box.Min, want.Min, tolerance) || !vecNear(box.Max, want.Max, tolerance) {
		t.Errorf("Expected %v, got %v", want, box)
	}
}
