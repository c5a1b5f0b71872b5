package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// TriangleMesh is an indexed triangle list exposed as a Group of triangles
type TriangleMesh struct {
	*Group
	Vertices []core.Vec3
	Faces    []int // Each group of 3 indices forms a triangle
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Normals   []core.Vec3         // Optional per-vertex normals (one per vertex)
	Smooth    bool                // Compute per-vertex normals when Normals is nil
	Materials []material.Material // Optional per-triangle materials
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// options may be nil for a flat-shaded mesh with a single material.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("mesh: %d face indices is not a multiple of 3", len(faces))
	}
	numTriangles := len(faces) / 3

	for _, idx := range faces {
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("mesh: face index %d out of bounds for %d vertices", idx, len(vertices))
		}
	}

	var normals []core.Vec3
	if options != nil {
		if options.Normals != nil && len(options.Normals) != len(vertices) {
			return nil, fmt.Errorf("mesh: %d normals for %d vertices", len(options.Normals), len(vertices))
		}
		if options.Materials != nil && len(options.Materials) != numTriangles {
			return nil, fmt.Errorf("mesh: %d materials for %d triangles", len(options.Materials), numTriangles)
		}
		normals = options.Normals
		if normals == nil && options.Smooth {
			normals = ComputeVertexNormals(vertices, faces)
		}
	}

	group := &Group{Shapes: make([]Shape, 0, numTriangles)}
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		triangleMaterial := mat
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}

		if normals != nil {
			group.Add(NewSmoothTriangle(
				vertices[i0], vertices[i1], vertices[i2],
				normals[i0], normals[i1], normals[i2],
				triangleMaterial,
			))
		} else {
			group.Add(NewTriangle(vertices[i0], vertices[i1], vertices[i2], triangleMaterial))
		}
	}

	return &TriangleMesh{
		Group:    group,
		Vertices: vertices,
		Faces:    faces,
	}, nil
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return tm.Len()
}

// ComputeVertexNormals averages adjacent face normals weighted by face area
func ComputeVertexNormals(vertices []core.Vec3, faces []int) []core.Vec3 {
	normals := make([]core.Vec3, len(vertices))
	for i := 0; i+2 < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		// Unnormalized cross product has length 2·area
		faceNormal := vertices[i1].Subtract(vertices[i0]).Cross(vertices[i2].Subtract(vertices[i0]))
		normals[i0] = normals[i0].Add(faceNormal)
		normals[i1] = normals[i1].Add(faceNormal)
		normals[i2] = normals[i2].Add(faceNormal)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}
