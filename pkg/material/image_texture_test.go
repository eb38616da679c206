package material

import (
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
)

func TestImageTexture_Evaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewImageTexture(2, 2, []core.Vec3{white, black, black, white})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom-left", core.NewVec2(0.1, 0.1), black},
		{"bottom-right", core.NewVec2(0.9, 0.1), white},
		{"top-left", core.NewVec2(0.1, 0.9), white},
		{"top-right", core.NewVec2(0.9, 0.9), black},
		{"wrapped u", core.NewVec2(1.1, 0.9), white},
		{"negative sphere v", core.NewVec2(0.1, -0.1), white},
		{"exact upper edge wraps to bottom-left", core.NewVec2(1.0, 1.0), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); !got.Equals(tt.expected) {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, got)
			}
		})
	}
}

func TestImageTexture_EmptyIsBlack(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); !got.Equals(core.Vec3{}) {
		t.Errorf("Expected black from empty texture, got %v", got)
	}
}

func TestNewImageTextureFromFile_Missing(t *testing.T) {
	if _, err := NewImageTextureFromFile("does-not-exist.png"); err == nil {
		t.Error("Expected error for missing texture file")
	}
}

func TestCheckerTexture_Alternates(t *testing.T) {
	odd := core.NewVec3(0.2, 0.3, 0.1)
	even := core.NewVec3(0.9, 0.9, 0.9)
	checker := NewCheckerTexture(1.0, odd, even)

	// sin(1)^3 > 0 gives even, flipping one coordinate flips the sign
	if got := checker.Evaluate(core.Vec2{}, core.NewVec3(1, 1, 1)); !got.Equals(even) {
		t.Errorf("Expected even color, got %v", got)
	}
	if got := checker.Evaluate(core.Vec2{}, core.NewVec3(-1, 1, 1)); !got.Equals(odd) {
		t.Errorf("Expected odd color, got %v", got)
	}
}

func TestProceduralTextures(t *testing.T) {
	checker := NewCheckerboardTexture(4, 4, 2, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	if !checker.Pixels[0].Equals(core.NewVec3(1, 1, 1)) || !checker.Pixels[2].Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Unexpected checkerboard pixels %v", checker.Pixels[:4])
	}

	debug := NewUVDebugTexture(3, 3)
	// Bottom-right texel encodes u=1, v=0
	if got := debug.Evaluate(core.NewVec2(0.99, 0.01), core.Vec3{}); !got.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected (1, 0, 0) at bottom-right, got %v", got)
	}

	gradient := NewGradientTexture(2, 3, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 1))
	if !gradient.Pixels[0].Equals(core.NewVec3(1, 1, 1)) || !gradient.Pixels[5].Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Unexpected gradient end rows %v", gradient.Pixels)
	}
	if !gradient.Pixels[2].Equals(core.NewVec3(0.5, 0.5, 1)) {
		t.Errorf("Expected midpoint (0.5, 0.5, 1), got %v", gradient.Pixels[2])
	}
}
