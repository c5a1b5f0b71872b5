package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Transform places a child shape in the scene through an affine matrix
type Transform struct {
	Matrix       core.Mat4 // Child space to parent space
	Child        Shape
	inverse      core.Mat4 // Parent space to child space
	normalMatrix core.Mat4 // Transpose of inverse, for normals
}

// NewTransform wraps child with matrix; the matrix must be invertible
func NewTransform(matrix core.Mat4, child Shape) (*Transform, error) {
	if child == nil {
		return nil, fmt.Errorf("transform: %w", ErrNilShape)
	}
	inverse, ok := matrix.Inverse()
	if !ok {
		return nil, degenerate("transform matrix is singular (det=%g)", matrix.Determinant())
	}
	return &Transform{
		Matrix:       matrix,
		Child:        child,
		inverse:      inverse,
		normalMatrix: inverse.Transpose(),
	}, nil
}

// MustTransform is like NewTransform but panics on error; for scene constructors
func MustTransform(matrix core.Mat4, child Shape) *Transform {
	t, err := NewTransform(matrix, child)
	if err != nil {
		panic(err)
	}
	return t
}

// Hit intersects the child in its local frame.
// The local direction is not renormalized so t means the same thing in both
// frames; tMin and hit.T can be passed through unchanged.
func (t *Transform) Hit(ray core.Ray, tMin float64, hit *material.HitRecord) bool {
	local := core.NewRay(
		t.inverse.TransformPoint(ray.Origin),
		t.inverse.TransformDirection(ray.Direction),
	)

	if !t.Child.Hit(local, tMin, hit) {
		return false
	}

	normal := t.normalMatrix.TransformDirection(hit.Normal).Normalize()
	hit.Set(hit.T, hit.Material, normal)
	return true
}

// Inverse returns the parent-to-child matrix
func (t *Transform) Inverse() core.Mat4 {
	return t.inverse
}

// Validate checks the matrix and the child
func (t *Transform) Validate() error {
	if t.Child == nil {
		return fmt.Errorf("transform: %w", ErrNilShape)
	}
	if _, ok := t.Matrix.Inverse(); !ok {
		return degenerate("transform matrix is singular")
	}
	if err := Validate(t.Child); err != nil {
		return fmt.Errorf("transform child: %w", err)
	}
	return nil
}
