package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon is the |d·n| below which a ray counts as parallel to a plane
const parallelEpsilon = 1e-12

// Plane represents the infinite plane {p : p·Normal = Offset}
type Plane struct {
	Normal   core.Vec3         // Unit normal
	Offset   float64           // Signed distance of the plane from the origin along Normal
	Material material.Material // Material of the plane
}

// NewPlane creates a plane from a normal and offset. A non-unit normal is
// normalized and the offset rescaled so the same plane is described.
func NewPlane(normal core.Vec3, offset float64, material material.Material) *Plane {
	length := normal.Length()
	if length > 0 {
		normal = normal.Multiply(1 / length)
		offset /= length
	}
	return &Plane{
		Normal:   normal,
		Offset:   offset,
		Material: material,
	}
}

// NewPlaneThroughPoint creates a plane with the given normal passing through point
func NewPlaneThroughPoint(point, normal core.Vec3, material material.Material) *Plane {
	n := normal.Normalize()
	return NewPlane(n, point.Dot(n), material)
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin float64, hit *material.HitRecord) bool {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < parallelEpsilon {
		return false
	}

	t := (p.Offset - ray.Origin.Dot(p.Normal)) / denominator
	if !hit.Accepts(t, tMin) {
		return false
	}

	// The normal is reported as-is, regardless of which side the ray came from
	hit.Set(t, p.Material, p.Normal)
	return true
}

// Validate rejects planes without a usable normal
func (p *Plane) Validate() error {
	if math.Abs(p.Normal.Length()-1) > 1e-6 {
		return degenerate("plane normal %v is not unit length", p.Normal)
	}
	return nil
}
