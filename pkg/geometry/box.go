package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// boxFaces lists the 12 outward-facing triangles over the 8 box corners
var boxFaces = []int{
	4, 5, 6, 4, 6, 7, // front (+Z)
	1, 0, 3, 1, 3, 2, // back (-Z)
	0, 4, 7, 0, 7, 3, // left (-X)
	5, 1, 2, 5, 2, 6, // right (+X)
	7, 6, 2, 7, 2, 3, // top (+Y)
	0, 1, 5, 0, 5, 4, // bottom (-Y)
}

// NewBox creates an axis-aligned box between minCorner and maxCorner as a flat-shaded mesh.
// Rotated boxes are built by wrapping the result in a Transform.
func NewBox(minCorner, maxCorner core.Vec3, mat material.Material) *TriangleMesh {
	lo := core.NewVec3(min(minCorner.X, maxCorner.X), min(minCorner.Y, maxCorner.Y), min(minCorner.Z, maxCorner.Z))
	hi := core.NewVec3(max(minCorner.X, maxCorner.X), max(minCorner.Y, maxCorner.Y), max(minCorner.Z, maxCorner.Z))

	corners := []core.Vec3{
		core.NewVec3(lo.X, lo.Y, lo.Z), // 0: left-bottom-back
		core.NewVec3(hi.X, lo.Y, lo.Z), // 1: right-bottom-back
		core.NewVec3(hi.X, hi.Y, lo.Z), // 2: right-top-back
		core.NewVec3(lo.X, hi.Y, lo.Z), // 3: left-top-back
		core.NewVec3(lo.X, lo.Y, hi.Z), // 4: left-bottom-front
		core.NewVec3(hi.X, lo.Y, hi.Z), // 5: right-bottom-front
		core.NewVec3(hi.X, hi.Y, hi.Z), // 6: right-top-front
		core.NewVec3(lo.X, hi.Y, hi.Z), // 7: left-top-front
	}

	// Indices are static and in range, so construction cannot fail
	mesh, _ := NewTriangleMesh(corners, boxFaces, mat, nil)
	return mesh
}

// NewUnitCube creates a cube of side 1 centered at the origin
func NewUnitCube(mat material.Material) *TriangleMesh {
	return NewBox(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5), mat)
}
