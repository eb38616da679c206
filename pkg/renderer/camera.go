package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-path-tracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter, 0 for a pinhole
	FocusDistance float64   // Distance to the focus plane, 0 = distance to LookAt
	Time0, Time1  float64   // Shutter open and close times
}

// DefaultCameraConfig returns a pinhole camera looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	zero := core.Vec3{}
	if override.Center != zero {
		base.Center = override.Center
	}
	if override.LookAt != zero {
		base.LookAt = override.LookAt
	}
	if override.Up != zero {
		base.Up = override.Up
	}
	if override.Width != 0 {
		base.Width = override.Width
	}
	if override.AspectRatio != 0 {
		base.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		base.VFov = override.VFov
	}
	if override.Aperture != 0 {
		base.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		base.FocusDistance = override.FocusDistance
	}
	if override.Time0 != 0 || override.Time1 != 0 {
		base.Time0, base.Time1 = override.Time0, override.Time1
	}
	return base
}

// Camera generates rays for rendering
type Camera struct {
	config        CameraConfig
	origin        core.Vec3
	upperLeft     core.Vec3 // Upper-left corner of the viewport on the focus plane
	horizontal    core.Vec3 // Viewport width vector
	vertical      core.Vec3 // Viewport height vector
	u, v, w       core.Vec3 // Camera basis, w points backwards
	lensRadius    float64
	width, height int
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	width := max(1, config.Width)
	aspectRatio := config.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 1
	}
	height := max(1, int(float64(width)/aspectRatio))

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * aspectRatio

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	upperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(horizontal.Multiply(0.5)).
		Add(vertical.Multiply(0.5))

	return &Camera{
		config:     config,
		origin:     config.Center,
		upperLeft:  upperLeft,
		horizontal: horizontal,
		vertical:   vertical,
		u:          u,
		v:          v,
		w:          w,
		lensRadius: config.Aperture / 2,
		width:      width,
		height:     height,
	}
}

// GetRay generates a ray through a random point of pixel (i, j).
// Row 0 is the top of the image.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	s := (float64(i) + random.Float64()) / float64(c.width)
	t := (float64(j) + random.Float64()) / float64(c.height)

	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	target := c.upperLeft.Add(c.horizontal.Multiply(s)).Subtract(c.vertical.Multiply(t))
	return core.NewRayAtTime(origin, target.Subtract(origin), c.sampleTime(random))
}

// sampleTime picks a uniform time inside the shutter interval
func (c *Camera) sampleTime(random *rand.Rand) float64 {
	if c.config.Time1 <= c.config.Time0 {
		return c.config.Time0
	}
	return c.config.Time0 + random.Float64()*(c.config.Time1-c.config.Time0)
}

// GetCameraForward returns the unit direction the camera looks in
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// ImageSize returns the image dimensions in pixels
func (c *Camera) ImageSize() (width, height int) {
	return c.width, c.height
}

// Shutter returns the shutter interval
func (c *Camera) Shutter() (time0, time1 float64) {
	return c.config.Time0, c.config.Time1
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
