package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material interface for surfaces that can be shaded by local illumination
type Material interface {
	// Shade returns the light reflected toward the viewer from a single light.
	// It must be a pure function of its arguments.
	Shade(ray core.Ray, hit HitRecord, dirToLight, lightIntensity core.Vec3) core.Vec3

	// DiffuseColor is used for the ambient term
	DiffuseColor() core.Vec3

	// SpecularColor weights recursive mirror reflection
	SpecularColor() core.Vec3
}

// HitRecord accumulates the nearest intersection found so far for a single ray query
type HitRecord struct {
	T        float64   // Parameter t along the ray, +Inf until something is hit
	Normal   core.Vec3 // Unit surface normal at the intersection
	Material Material  // Material of the hit surface, nil until something is hit
}

// NewHitRecord returns an empty record ready for a traversal
func NewHitRecord() HitRecord {
	return HitRecord{T: math.Inf(1)}
}

// Set overwrites the record with a closer intersection
func (h *HitRecord) Set(t float64, m Material, normal core.Vec3) {
	h.T = t
	h.Material = m
	h.Normal = normal
}

// IsHit reports whether any intersection has been recorded
func (h *HitRecord) IsHit() bool {
	return h.Material != nil && !math.IsInf(h.T, 1)
}

// Accepts reports whether an intersection at t would improve the record
func (h *HitRecord) Accepts(t, tMin float64) bool {
	return t >= tMin && t < h.T
}
