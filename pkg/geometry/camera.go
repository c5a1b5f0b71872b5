package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	Direction   core.Vec3 // Viewing direction (need not be unit length)
	Up          core.Vec3 // Up hint, orthogonalized against Direction
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
	TMin        float64   // Minimum distance accepted for primary hits
}

// PerspectiveCamera is a pinhole camera that maps NDC points in [-1,1]² to rays
type PerspectiveCamera struct {
	config   CameraConfig
	w        core.Vec3 // Forward
	u        core.Vec3 // Right
	v        core.Vec3 // Up
	distance float64   // Distance to the image plane spanning [-1,1] vertically
	aspect   float64
	tMin     float64
}

// NewPerspectiveCamera builds a camera from config, falling back to sensible
// defaults for a zero direction, up, field of view or aspect ratio
func NewPerspectiveCamera(config CameraConfig) *PerspectiveCamera {
	if config.Direction.IsZero() {
		config.Direction = core.NewVec3(0, 0, -1)
	}
	if config.Up.IsZero() {
		config.Up = core.NewVec3(0, 1, 0)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		config.VFov = 45
	}
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1
	}

	w := config.Direction.Normalize()
	u := w.Cross(config.Up).Normalize()
	if u.IsZero() {
		// Up parallel to direction: pick any perpendicular axis
		u = w.Cross(core.NewVec3(1, 0, 0)).Normalize()
		if u.IsZero() {
			u = w.Cross(core.NewVec3(0, 0, 1)).Normalize()
		}
	}
	v := u.Cross(w)

	return &PerspectiveCamera{
		config:   config,
		w:        w,
		u:        u,
		v:        v,
		distance: 1 / math.Tan(config.VFov*math.Pi/360),
		aspect:   config.AspectRatio,
		tMin:     config.TMin,
	}
}

// NewLookAtCamera is a convenience wrapper that aims the camera at a target point
func NewLookAtCamera(center, lookAt, up core.Vec3, vfov, aspect float64) *PerspectiveCamera {
	return NewPerspectiveCamera(CameraConfig{
		Center:      center,
		Direction:   lookAt.Subtract(center),
		Up:          up,
		VFov:        vfov,
		AspectRatio: aspect,
	})
}

// GenerateRay returns the primary ray through ndc; the direction is unit length
func (c *PerspectiveCamera) GenerateRay(ndc core.Vec2) core.Ray {
	direction := c.u.Multiply(ndc.X * c.aspect).
		Add(c.v.Multiply(ndc.Y)).
		Add(c.w.Multiply(c.distance)).
		Normalize()
	return core.NewRay(c.config.Center, direction)
}

// TMin returns the minimum accepted distance for primary rays
func (c *PerspectiveCamera) TMin() float64 {
	return c.tMin
}

// Config returns the configuration the camera was built from, after defaults
func (c *PerspectiveCamera) Config() CameraConfig {
	return c.config
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Center.IsZero() {
		result.Center = override.Center
	}
	if !override.Direction.IsZero() {
		result.Direction = override.Direction
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.TMin != 0 {
		result.TMin = override.TMin
	}
	return result
}
