package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// ErrUnknownAccelerator is returned for an unrecognized accelerator name
var ErrUnknownAccelerator = errors.New("unknown accelerator")

// ErrUnknownIntegrator is returned for an unrecognized integrator name
var ErrUnknownIntegrator = errors.New("unknown integrator")

// AcceleratorKind selects the structure rays are traced against
type AcceleratorKind string

const (
	AcceleratorList  AcceleratorKind = "list"  // Linear scan of the world
	AcceleratorBVH   AcceleratorKind = "bvh"   // Bounding volume hierarchy
	AcceleratorRTree AcceleratorKind = "rtree" // R-tree over member boxes
)

// ParseAccelerator converts a flag value into an AcceleratorKind
func ParseAccelerator(name string) (AcceleratorKind, error) {
	switch kind := AcceleratorKind(name); kind {
	case AcceleratorList, AcceleratorBVH, AcceleratorRTree:
		return kind, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownAccelerator)
	}
}

// IntegratorKind selects the light transport used for camera rays
type IntegratorKind string

const (
	IntegratorPath              IntegratorKind = "path"           // Recursive path tracer (default)
	IntegratorPathIterative     IntegratorKind = "path-iterative" // Loop form of the path tracer
	IntegratorDiffuseUnitVector IntegratorKind = "diffuse-unit-vector"
	IntegratorDiffuseHemisphere IntegratorKind = "diffuse-hemisphere"
	IntegratorDiffuseUnitSphere IntegratorKind = "diffuse-unit-sphere"
	IntegratorDiffuseCosine     IntegratorKind = "diffuse-cosine"
)

var diffuseModes = map[IntegratorKind]integrator.DiffuseMode{
	IntegratorDiffuseUnitVector: integrator.UnitVector,
	IntegratorDiffuseHemisphere: integrator.Hemisphere,
	IntegratorDiffuseUnitSphere: integrator.UnitSphere,
	IntegratorDiffuseCosine:     integrator.Cosine,
}

// ParseIntegrator converts a flag value into an IntegratorKind
func ParseIntegrator(name string) (IntegratorKind, error) {
	kind := IntegratorKind(name)
	if _, ok := diffuseModes[kind]; ok || kind == IntegratorPath || kind == IntegratorPathIterative {
		return kind, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownIntegrator)
}

// Scene contains all the elements needed for rendering.
// A scene is read-only once rendering starts.
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.World
	Accelerator    geometry.Hittable // Built from World by BuildAccelerator; nil traces World directly
	Background     core.Vec3         // Radiance of rays that escape the scene
	SkyBackground  bool              // Use the sky gradient instead of Background
	Integrator     integrator.Integrator
	SamplingConfig renderer.SamplingConfig
}

// newScene builds the camera from the default config merged with any overrides,
// and sizes the sampling config to match the camera
func newScene(cameraConfig renderer.CameraConfig, sampling renderer.SamplingConfig, cameraOverrides ...renderer.CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	camera := renderer.NewCamera(cameraConfig)
	sampling.Width, sampling.Height = camera.ImageSize()

	return &Scene{
		Camera:         camera,
		CameraConfig:   cameraConfig,
		World:          geometry.NewWorld(),
		SamplingConfig: renderer.DefaultSamplingConfig().Merge(sampling),
	}
}

// BuildAccelerator indexes the world with the given structure using the camera's shutter interval
func (s *Scene) BuildAccelerator(kind AcceleratorKind) error {
	time0, time1 := s.CameraConfig.Time0, s.CameraConfig.Time1

	switch kind {
	case AcceleratorList:
		s.Accelerator = nil
	case AcceleratorBVH:
		s.Accelerator = geometry.NewBVH(s.World.Objects, time0, time1)
	case AcceleratorRTree:
		tree, err := geometry.NewRTree(s.World.Objects, time0, time1)
		if err != nil {
			return fmt.Errorf("building rtree: %w", err)
		}
		s.Accelerator = tree
	default:
		return fmt.Errorf("%q: %w", kind, ErrUnknownAccelerator)
	}
	return nil
}

// UseIntegrator replaces the scene integrator with the given kind, built from the current
// background and sampling depth. IntegratorPath restores the default.
func (s *Scene) UseIntegrator(kind IntegratorKind) error {
	switch kind {
	case IntegratorPath:
		s.Integrator = nil
	case IntegratorPathIterative:
		s.Integrator = &integrator.PathTracingIntegrator{
			MaxDepth:      s.SamplingConfig.MaxDepth,
			Background:    s.Background,
			SkyBackground: s.SkyBackground,
			Iterative:     true,
		}
	default:
		mode, ok := diffuseModes[kind]
		if !ok {
			return fmt.Errorf("%q: %w", kind, ErrUnknownIntegrator)
		}
		s.Integrator = integrator.NewDiffuseIntegrator(mode, s.SamplingConfig.MaxDepth)
	}
	return nil
}

// SetMaxDepth overrides the bounce limit of the default integrator
func (s *Scene) SetMaxDepth(depth int) {
	s.SamplingConfig.MaxDepth = depth
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the accelerator if one was built, otherwise the world itself
func (s *Scene) GetWorld() geometry.Hittable {
	if s.Accelerator != nil {
		return s.Accelerator
	}
	return s.World
}

// GetSamplingConfig implements renderer.Scene
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// GetIntegrator returns the scene's integrator, defaulting to a path tracer
// using the scene background and sampling depth
func (s *Scene) GetIntegrator() integrator.Integrator {
	if s.Integrator != nil {
		return s.Integrator
	}
	return &integrator.PathTracingIntegrator{
		MaxDepth:      s.SamplingConfig.MaxDepth,
		Background:    s.Background,
		SkyBackground: s.SkyBackground,
	}
}

// GetPrimitiveCount returns the number of top-level objects in the world
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
