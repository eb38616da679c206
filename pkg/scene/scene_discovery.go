package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-path-tracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name passed to Create
	DisplayName string // Human readable name
	Description string
}

type sceneEntry struct {
	info  SceneInfo
	build func(cameraOverrides ...renderer.CameraConfig) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		info:  SceneInfo{ID: "default", DisplayName: "Default", Description: "Diffuse, metal, glass and hollow glass spheres"},
		build: NewDefaultScene,
	},
	"motion": {
		info:  SceneInfo{ID: "motion", DisplayName: "Motion Blur", Description: "Random grid of bouncing spheres under an open shutter"},
		build: NewMotionScene,
	},
	"light": {
		info:  SceneInfo{ID: "light", DisplayName: "Area Light", Description: "Rectangle light over a checkered ground in the dark"},
		build: NewLightScene,
	},
	"uv": {
		info:  SceneInfo{ID: "uv", DisplayName: "UV Mapping", Description: "Image-textured sphere and rectangle showing their UV maps"},
		build: NewUVScene,
	},
}

// Create builds the named built-in scene
func Create(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
	}
	return entry.build(cameraOverrides...), nil
}

// List returns the names of the built-in scenes in sorted order
func List() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range List() {
		scenes = append(scenes, builtinScenes[name].info)
	}
	return scenes
}
