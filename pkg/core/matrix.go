package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// singularEpsilon is the determinant magnitude below which a matrix is treated as non-invertible
const singularEpsilon = 1e-12

// Mat4 is a 4x4 affine transformation matrix backed by mgl64 (column-major storage)
type Mat4 struct {
	m mgl64.Mat4
}

// Identity returns the identity matrix
func Identity() Mat4 {
	return Mat4{m: mgl64.Ident4()}
}

// NewMat4FromRows builds a matrix from four rows, as matrices are usually written down
func NewMat4FromRows(r0, r1, r2, r3 [4]float64) Mat4 {
	return Mat4{m: mgl64.Mat4FromRows(
		mgl64.Vec4(r0), mgl64.Vec4(r1), mgl64.Vec4(r2), mgl64.Vec4(r3),
	)}
}

// Translate returns a translation matrix
func Translate(offset Vec3) Mat4 {
	return Mat4{m: mgl64.Translate3D(offset.X, offset.Y, offset.Z)}
}

// Scale returns a non-uniform scaling matrix
func Scale(factors Vec3) Mat4 {
	return Mat4{m: mgl64.Scale3D(factors.X, factors.Y, factors.Z)}
}

// UniformScale returns a scaling matrix with the same factor on every axis
func UniformScale(factor float64) Mat4 {
	return Scale(Splat(factor))
}

// Rotate returns a rotation of angleDegrees around axis (right-handed)
func Rotate(axis Vec3, angleDegrees float64) Mat4 {
	a := axis.Normalize()
	return Mat4{m: mgl64.HomogRotate3D(mgl64.DegToRad(angleDegrees), mgl64.Vec3{a.X, a.Y, a.Z})}
}

// Mul returns the product m * other; applying the result applies other first
func (m Mat4) Mul(other Mat4) Mat4 {
	return Mat4{m: m.m.Mul4(other.m)}
}

// At returns the element at the given row and column
func (m Mat4) At(row, col int) float64 {
	return m.m.At(row, col)
}

// Determinant returns the determinant of the matrix
func (m Mat4) Determinant() float64 {
	return m.m.Det()
}

// Inverse returns the inverse matrix, or false when the matrix is singular
func (m Mat4) Inverse() (Mat4, bool) {
	if math.Abs(m.m.Det()) < singularEpsilon {
		return Mat4{}, false
	}
	return Mat4{m: m.m.Inv()}, true
}

// Transpose returns the transposed matrix
func (m Mat4) Transpose() Mat4 {
	return Mat4{m: m.m.Transpose()}
}

// TransformPoint applies the matrix to a point (homogeneous w = 1)
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	r := m.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if r[3] != 0 && r[3] != 1 {
		return Vec3{r[0] / r[3], r[1] / r[3], r[2] / r[3]}
	}
	return Vec3{r[0], r[1], r[2]}
}

// TransformDirection applies only the linear 3x3 part of the matrix (homogeneous w = 0).
// The result is not renormalized.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	r := m.m.Mat3().Mul3x1(mgl64.Vec3{d.X, d.Y, d.Z})
	return Vec3{r[0], r[1], r[2]}
}

// ApproxEqual reports whether every element differs by at most tolerance
func (m Mat4) ApproxEqual(other Mat4, tolerance float64) bool {
	return m.m.ApproxEqualThreshold(other.m, tolerance)
}
