package core

import (
	"math"
	"math/rand"
	"testing"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if dot := a.Dot(b); dot != 12 {
		t.Errorf("Expected dot 12, got %f", dot)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !vecNear(v, NewVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", v)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_ReflectAndRefract(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	incoming := NewVec3(1, -1, 0)

	reflected := incoming.Reflect(normal)
	if !vecNear(reflected, NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected reflection (1, 1, 0), got %v", reflected)
	}

	// Equal indices leave the direction unchanged
	unit := incoming.Normalize()
	refracted := unit.Refract(normal, 1.0)
	if !vecNear(refracted, unit, 1e-9) {
		t.Errorf("Expected unchanged direction %v, got %v", unit, refracted)
	}
}

func TestVec3_NearZeroAndFinite(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Expected 1e-3 component not to be near zero")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN vector not to be finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Expected infinite vector not to be finite")
	}
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected regular vector to be finite")
	}
}

func TestRandomHelpers_Distribution(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	normal := NewVec3(0, 0, 1)

	for i := 0; i < 1000; i++ {
		if p := RandomInUnitSphere(sampler); p.Length() > 1.0+1e-12 {
			t.Fatalf("Point outside unit sphere: %v", p)
		}
		if u := RandomUnitVector(sampler); math.Abs(u.Length()-1.0) > 1e-9 {
			t.Fatalf("Unit vector has length %f", u.Length())
		}
		if h := RandomInHemisphere(normal, sampler); h.Dot(normal) < 0 {
			t.Fatalf("Hemisphere sample %v below the normal", h)
		}
		if d := SampleCosineHemisphere(normal, sampler.Get2D()); d.Dot(normal) < -1e-12 || math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Cosine sample %v not a unit vector above the normal", d)
		}
	}

	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1.0 {
			t.Fatalf("Point outside unit disk: %v", p)
		}
	}
}

func TestSampleOnUnitSphere_Poles(t *testing.T) {
	tests := []struct {
		name     string
		sample   Vec2
		expected Vec3
	}{
		{"north pole", NewVec2(0, 0.3), NewVec3(0, 0, 1)},
		{"south pole", NewVec2(1, 0.7), NewVec3(0, 0, -1)},
		{"equator +x", NewVec2(0.5, 0), NewVec3(1, 0, 0)},
		{"equator +y", NewVec2(0.5, 0.25), NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleOnUnitSphere(tt.sample)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSamplePointInUnitSphere_Radius(t *testing.T) {
	// Radius sample 0.125 has cube root 0.5
	p := SamplePointInUnitSphere(NewVec3(0.125, 0.4, 0.9))
	if math.Abs(p.Length()-0.5) > 1e-9 {
		t.Errorf("Expected radius 0.5, got %f", p.Length())
	}
}

func TestRay_At(t *testing.T) {
	tests := []struct {
		name     string
		ray      Ray
		param    float64
		expected Vec3
	}{
		{"origin at t=0", NewRay(NewVec3(1, 2, 3), NewVec3(1, 0, 0)), 0, NewVec3(1, 2, 3)},
		{"unit step", NewRay(NewVec3(1, 2, 3), NewVec3(1, 0, 0)), 1, NewVec3(2, 2, 3)},
		{"scaled direction", NewRay(NewVec3(0, 0, 0), NewVec3(2, 3, 4)), 2, NewVec3(4, 6, 8)},
		{"negative t", NewRay(NewVec3(5, 5, 5), NewVec3(1, 1, 1)), -2, NewVec3(3, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ray.At(tt.param); !vecNear(got, tt.expected, 1e-12) {
				t.Errorf("At(%f) = %v, want %v", tt.param, got, tt.expected)
			}
		})
	}
}

func TestRay_Time(t *testing.T) {
	if r := NewRay(Vec3{}, NewVec3(0, 0, 1)); r.Time != 0 {
		t.Errorf("Expected default time 0, got %f", r.Time)
	}
	if r := NewRayAtTime(Vec3{}, NewVec3(0, 0, 1), 0.75); r.Time != 0.75 {
		t.Errorf("Expected time 0.75, got %f", r.Time)
	}
}
