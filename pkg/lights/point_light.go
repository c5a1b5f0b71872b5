package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is an omnidirectional light at a position with inverse-square falloff
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
	Falloff  float64 // Attenuation scale; <= 0 disables attenuation
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, falloff float64) *PointLight {
	return &PointLight{
		Position: position,
		Color:    color,
		Falloff:  falloff,
	}
}

// Type returns the light type
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Illuminate computes intensity Color / (Falloff·d²) at point.
// A point coincident with the light receives nothing.
func (pl *PointLight) Illuminate(point core.Vec3) Illumination {
	toLight := pl.Position.Subtract(point)
	distanceSquared := toLight.LengthSquared()
	if distanceSquared == 0 {
		return Illumination{}
	}

	intensity := pl.Color
	if pl.Falloff > 0 {
		intensity = pl.Color.Multiply(1 / (pl.Falloff * distanceSquared))
	}

	distance := toLight.Length()
	return Illumination{
		Direction: toLight.Multiply(1 / distance),
		Intensity: intensity,
		Distance:  distance,
	}
}
