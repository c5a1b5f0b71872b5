package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is an infinitely distant light shining along Direction
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels in
	Color     core.Vec3
}

// NewDirectionalLight creates a directional light; direction is normalized
func NewDirectionalLight(direction, color core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Color:     color,
	}
}

// Type returns the light type
func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Illuminate returns the same unattenuated illumination for every point
func (dl *DirectionalLight) Illuminate(point core.Vec3) Illumination {
	return Illumination{
		Direction: dl.Direction.Negate(),
		Intensity: dl.Color,
		Distance:  math.Inf(1),
	}
}
