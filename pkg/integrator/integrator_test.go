package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
)

const tolerance = 1e-9

// mockMaterial emits a fixed color and either absorbs or bounces in a fixed direction
type mockMaterial struct {
	emission    core.Vec3
	attenuation core.Vec3
	scatters    bool
	direction   core.Vec3
}

func (m *mockMaterial) Emit(u, v float64, point core.Vec3) core.Vec3 {
	return m.emission
}

func (m *mockMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	if !m.scatters {
		return material.ScatterResult{}, false
	}
	return material.ScatterResult{
		Attenuation: m.attenuation,
		Scattered:   core.NewRayAtTime(hit.Point, m.direction, rayIn.Time),
	}, true
}

// countingWorld wraps a hittable and counts Hit calls
type countingWorld struct {
	geometry.Hittable
	calls int
}

func (w *countingWorld) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	w.calls++
	return w.Hittable.Hit(ray, tMin, tMax)
}

func vecNear(a, b core.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestRayColor_DepthZeroIsBlack(t *testing.T) {
	world := &countingWorld{Hittable: geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, nil))}
	background := core.NewVec3(1, 1, 1)

	for _, depth := range []int{0, -3} {
		color := RayColor(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), world, depth, background, newTestSampler(42))
		if !color.Equals(core.Vec3{}) {
			t.Errorf("depth %d: expected black, got %v", depth, color)
		}
	}
	if world.calls != 0 {
		t.Errorf("Expected no intersection tests, got %d", world.calls)
	}
}

func TestRayColor_MissReturnsBackground(t *testing.T) {
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, nil))
	background := core.NewVec3(0.2, 0.4, 0.6)

	color := RayColor(core.NewRay(core.NewVec3(0, 5, -5), core.NewVec3(0, 0, 1)), world, 10, background, newTestSampler(42))
	if !color.Equals(background) {
		t.Errorf("Expected exactly %v, got %v", background, color)
	}

	empty := geometry.NewWorld()
	color = RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), empty, 1, background, newTestSampler(42))
	if !color.Equals(background) {
		t.Errorf("Expected background for empty world, got %v", color)
	}
}

func TestRayColor_AbsorbingEmitter(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(4, 3, 2))
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, light))

	color := RayColor(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), world, 5, core.NewVec3(1, 1, 1), newTestSampler(42))
	if !vecNear(color, core.NewVec3(4, 3, 2), tolerance) {
		t.Errorf("Expected emission only, got %v", color)
	}
}

func TestRayColor_EmissionPlusAttenuatedBackground(t *testing.T) {
	mat := &mockMaterial{
		emission:    core.NewVec3(0.1, 0.2, 0.3),
		attenuation: core.NewVec3(0.5, 0.25, 1),
		scatters:    true,
		direction:   core.NewVec3(0, 0, -1), // back out towards the camera
	}
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat))
	background := core.NewVec3(1, 1, 1)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	tests := []struct {
		name  string
		depth int
		want  core.Vec3
	}{
		// One bounce left when scattering: the recursion returns black
		{"depth 1", 1, core.NewVec3(0.1, 0.2, 0.3)},
		{"depth 2", 2, core.NewVec3(0.1+0.5, 0.2+0.25, 0.3+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recursive := RayColor(ray, world, tt.depth, background, newTestSampler(1))
			if !vecNear(recursive, tt.want, tolerance) {
				t.Errorf("Recursive: expected %v, got %v", tt.want, recursive)
			}
			iterative := RayColorIterative(ray, world, tt.depth, background, newTestSampler(1))
			if !vecNear(iterative, tt.want, tolerance) {
				t.Errorf("Iterative: expected %v, got %v", tt.want, iterative)
			}
		})
	}
}

func TestRayColor_NilMaterialIsBlack(t *testing.T) {
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, nil))

	color := RayColor(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), world, 5, core.NewVec3(1, 1, 1), newTestSampler(42))
	if !color.Equals(core.Vec3{}) {
		t.Errorf("Expected black, got %v", color)
	}
}

func TestRayColorIterative_MatchesRecursive(t *testing.T) {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(-1, 1, 0), 1, metal),
		geometry.NewSphere(core.NewVec3(1, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(1, 1, 0), -0.9, glass),
		geometry.NewXYPlane(-2, 2, 2, 4, -2, light),
	)
	background := core.NewVec3(0.7, 0.8, 1.0)

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		origin := core.NewVec3(0, 2, 8)
		target := core.NewVec3(random.Float64()*6-3, random.Float64()*3, 0)
		ray := core.NewRay(origin, target.Subtract(origin))
		seed := int64(i)

		recursive := RayColor(ray, world, 20, background, newTestSampler(seed))
		iterative := RayColorIterative(ray, world, 20, background, newTestSampler(seed))
		if !vecNear(recursive, iterative, 1e-9) {
			t.Fatalf("Ray %d: recursive %v != iterative %v", i, recursive, iterative)
		}
	}
}

func TestPathTracingIntegrator_RayColor(t *testing.T) {
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	up := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name       string
		integrator *PathTracingIntegrator
		want       core.Vec3
	}{
		{"constant background", NewPathTracingIntegrator(10, core.NewVec3(0.1, 0.1, 0.1)), core.NewVec3(0.1, 0.1, 0.1)},
		{"iterative", &PathTracingIntegrator{MaxDepth: 10, Background: core.NewVec3(0.3, 0, 0), Iterative: true}, core.NewVec3(0.3, 0, 0)},
		{"sky", &PathTracingIntegrator{MaxDepth: 10, SkyBackground: true}, core.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var integrator Integrator = tt.integrator
			color := integrator.RayColor(up, world, newTestSampler(42))
			if !vecNear(color, tt.want, tolerance) {
				t.Errorf("Expected %v, got %v", tt.want, color)
			}
		})
	}
}

func TestPathTracingIntegrator_ConcurrentUse(t *testing.T) {
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	integrator := NewPathTracingIntegrator(8, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	want := integrator.RayColor(ray, world, newTestSampler(7))
	results := make(chan core.Vec3, 8)
	for i := 0; i < 8; i++ {
		go func() {
			results <- integrator.RayColor(ray, world, newTestSampler(7))
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-results; !got.Equals(want) {
			t.Errorf("Expected %v from every goroutine, got %v", want, got)
		}
	}
}
