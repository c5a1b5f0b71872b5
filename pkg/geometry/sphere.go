package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin float64, hit *material.HitRecord) bool {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a < 1e-300 {
		return false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Prefer the nearer root; fall back to the far one when the origin is inside
	root := (-halfB - sqrtD) / a
	if root < tMin {
		root = (-halfB + sqrtD) / a
		if root < tMin {
			return false
		}
	}

	if root >= hit.T {
		return false
	}

	normal := ray.At(root).Subtract(s.Center).Normalize()
	hit.Set(root, s.Material, normal)
	return true
}

// Validate rejects spheres that cannot be hit
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) {
		return degenerate("sphere at %v has non-positive radius %g", s.Center, s.Radius)
	}
	return nil
}
