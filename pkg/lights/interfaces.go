package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
)

// Light interface for sources that illuminate surface points directly
type Light interface {
	Type() LightType

	// Illuminate returns the direction FROM point TO the light, the intensity
	// arriving at point and the distance to the light (+Inf for directional lights)
	Illuminate(point core.Vec3) Illumination
}

// Illumination is the light arriving at a single shading point
type Illumination struct {
	Direction core.Vec3 // Unit direction from the shading point to the light
	Intensity core.Vec3 // Color arriving at the point after attenuation
	Distance  float64   // Distance to the light; occluders beyond it do not shadow
}
