package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// determinantEpsilon is the magnitude below which the barycentric system is singular
const determinantEpsilon = 1e-12

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Normals    *[3]core.Vec3     // Optional per-vertex normals for smooth shading
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached face normal
}

// NewTriangle creates a flat-shaded triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}
	t.computeNormal()
	return t
}

// NewSmoothTriangle creates a triangle whose shading normal is interpolated from per-vertex normals
func NewSmoothTriangle(v0, v1, v2 core.Vec3, n0, n1, n2 core.Vec3, material material.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, material)
	t.Normals = &[3]core.Vec3{n0.Normalize(), n1.Normalize(), n2.Normalize()}
	return t
}

// computeNormal calculates and caches the triangle's face normal
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Intersect solves o + t·d = (1-β-γ)·v0 + β·v1 + γ·v2 with Cramer's rule.
// ok is false when the system is singular or the point lies outside the triangle;
// no tMin test is applied.
func (t *Triangle) Intersect(ray core.Ray) (tParam, beta, gamma float64, ok bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	negDir := ray.Direction.Negate()
	s := ray.Origin.Subtract(t.V0)

	// Columns of the system matrix are [edge1, edge2, -d]; det = c1·(c2×c3)
	e2xd := edge2.Cross(negDir)
	det := edge1.Dot(e2xd)
	if math.Abs(det) < determinantEpsilon {
		return 0, 0, 0, false
	}
	inv := 1.0 / det

	beta = s.Dot(e2xd) * inv
	if !(beta > 0) {
		return 0, 0, 0, false
	}
	gamma = edge1.Dot(s.Cross(negDir)) * inv
	if !(gamma > 0) || beta+gamma >= 1 {
		return 0, 0, 0, false
	}
	tParam = edge1.Dot(edge2.Cross(s)) * inv
	return tParam, beta, gamma, true
}

// Hit tests if a ray intersects with the triangle
func (t *Triangle) Hit(ray core.Ray, tMin float64, hit *material.HitRecord) bool {
	tParam, beta, gamma, ok := t.Intersect(ray)
	if !ok || !hit.Accepts(tParam, tMin) {
		return false
	}
	hit.Set(tParam, t.Material, t.ShadingNormal(beta, gamma))
	return true
}

// ShadingNormal returns the normal at barycentric coordinates (β, γ)
func (t *Triangle) ShadingNormal(beta, gamma float64) core.Vec3 {
	if t.Normals == nil {
		return t.normal
	}
	alpha := 1 - beta - gamma
	n := t.Normals[0].Multiply(alpha).
		Add(t.Normals[1].Multiply(beta)).
		Add(t.Normals[2].Multiply(gamma)).
		Normalize()
	if n.IsZero() {
		return t.normal
	}
	return n
}

// GetNormal returns the triangle's face normal
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// Area returns the triangle's surface area
func (t *Triangle) Area() float64 {
	return 0.5 * t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length()
}

// Validate rejects zero-area triangles
func (t *Triangle) Validate() error {
	if t.Area() < 1e-12 {
		return degenerate("triangle %v %v %v has zero area", t.V0, t.V1, t.V2)
	}
	return nil
}
