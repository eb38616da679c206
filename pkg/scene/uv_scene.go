package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewUVScene creates a scene demonstrating texture mapping on a sphere and a rectangle
func NewUVScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 1, 10),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
		Aperture:    0.0, // No DOF for texture clarity
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel:    50,
		MaxDepth:           10,
		AdaptiveMinSamples: 0.15,
		AdaptiveThreshold:  0.01,
	}

	s := newScene(defaultCameraConfig, samplingConfig, cameraOverrides...)
	s.SkyBackground = true

	// Create procedural textures
	uvDebug := material.NewUVDebugTexture(256, 256)
	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.8), // Blue
	)
	gradient := material.NewGradientTexture(4, 64, core.NewVec3(0.9, 0.6, 0.2), core.NewVec3(0.3, 0.1, 0.5))

	// The sphere's v runs over [-1, 0]; the texture wraps it back onto the image
	s.World.Add(
		geometry.NewSphere(core.NewVec3(-1.5, 0, 0), 1.2, material.NewTexturedLambertian(uvDebug)),
		geometry.NewXYPlane(0.5, -1.2, 3.5, 1.2, 0, material.NewTexturedLambertian(checkerboard)),
		geometry.NewSphere(core.NewVec3(0, -101.2, 0), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewXYPlane(-4, 3, 4, 5, 2, material.NewTexturedDiffuseLight(uvDebug)),
		geometry.NewSphere(core.NewVec3(2, -0.7, 1.5), 0.5, material.NewTexturedMetal(gradient, 0.1)),
		geometry.NewSphere(core.NewVec3(-1.5, -0.7, 2), 0.5, material.NewTintedDielectric(1.5, core.NewVec3(0.8, 1.0, 0.9))),
	)

	return s
}
