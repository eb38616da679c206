package scene

import (
	"math/rand"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// Grid half size of the small random spheres
const motionGridSize = 11

// NewMotionScene creates a grid of small random spheres around three large ones.
// Diffuse spheres bounce upwards while the shutter is open, giving motion blur.
func NewMotionScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel:    100,
		MaxDepth:           50,
		AdaptiveMinSamples: 0.15,
		AdaptiveThreshold:  0.015,
	}

	s := newScene(defaultCameraConfig, samplingConfig, cameraOverrides...)
	s.SkyBackground = true

	// Fixed seed so the layout is the same on every run
	random := rand.New(rand.NewSource(42))

	checker := material.NewCheckerTexture(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -motionGridSize; a < motionGridSize; a++ {
		for b := -motionGridSize; b < motionGridSize; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			chooseMaterial := random.Float64()
			switch {
			case chooseMaterial < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				bounce := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				s.World.Add(geometry.NewMovingSphere(center, bounce, defaultCameraConfig.Time0, defaultCameraConfig.Time1, 0.2,
					material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := randomColor(random).Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				s.World.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*random.Float64())))
			default:
				s.World.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
