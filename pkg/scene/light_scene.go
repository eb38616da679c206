package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewLightScene creates a sphere lit only by a rectangle light, against a black background
func NewLightScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}

	// Light paths are long and noisy, so sample more and stop less eagerly
	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel:    400,
		MaxDepth:           50,
		AdaptiveMinSamples: 0.25,
		AdaptiveThreshold:  0.02,
	}

	s := newScene(defaultCameraConfig, samplingConfig, cameraOverrides...)
	s.Background = core.Vec3{}

	checker := material.NewCheckerTexture(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(core.NewVec3(0.6, 0.3, 0.3))),
		geometry.NewXYPlane(3, 1, 5, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	return s
}
