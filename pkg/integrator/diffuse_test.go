package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

func TestSkyGradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		want      core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -3, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkyGradient(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			if !vecNear(got, tt.want, tolerance) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDiffuseIntegrator_Modes(t *testing.T) {
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, nil))
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	for _, mode := range []DiffuseMode{UnitVector, Hemisphere, UnitSphere, Cosine} {
		t.Run(mode.String(), func(t *testing.T) {
			integrator := NewDiffuseIntegrator(mode, 2)
			sampler := newTestSampler(42)

			for i := 0; i < 50; i++ {
				// A single convex sphere: every bounce escapes to the sky at half strength
				color := integrator.RayColor(ray, world, sampler)
				if color.X < 0.25-tolerance || color.X > 0.5+tolerance ||
					color.Y < 0.35-tolerance || color.Y > 0.5+tolerance ||
					math.Abs(color.Z-0.5) > tolerance {
					t.Fatalf("Unexpected color %v", color)
				}
			}
		})
	}
}

func TestDiffuseIntegrator_DepthLimit(t *testing.T) {
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, nil))
	hitRay := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	missRay := core.NewRay(core.NewVec3(0, 5, -5), core.NewVec3(0, 1, 0))

	integrator := NewDiffuseIntegrator(UnitVector, 1)
	if color := integrator.RayColor(hitRay, world, newTestSampler(42)); !color.Equals(core.Vec3{}) {
		t.Errorf("Expected black after the last bounce, got %v", color)
	}
	if color := integrator.RayColor(missRay, world, newTestSampler(42)); !vecNear(color, core.NewVec3(0.5, 0.7, 1.0), tolerance) {
		t.Errorf("Expected sky for a miss, got %v", color)
	}
	if color := NewDiffuseIntegrator(UnitVector, 0).RayColor(missRay, world, newTestSampler(42)); !color.Equals(core.Vec3{}) {
		t.Errorf("Expected black at depth 0, got %v", color)
	}
}
