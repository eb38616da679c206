package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewDefaultScene creates three spheres on a large ground sphere under a sky gradient
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	// Default camera configuration
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          30.0,
		Aperture:      0.05, // Slight depth of field blur
		FocusDistance: 0.0,  // Auto-calculate focus distance
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel:    100,
		MaxDepth:           50,
		AdaptiveMinSamples: 0.15, // 15% of max samples minimum for adaptive sampling
		AdaptiveThreshold:  0.01, // 1% relative error threshold
	}

	s := newScene(defaultCameraConfig, samplingConfig, cameraOverrides...)
	s.SkyBackground = true

	// Create materials
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	// The negative radius inner sphere flips the normals, making the left sphere a hollow shell
	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s
}
