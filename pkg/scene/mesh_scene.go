package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMeshScene creates a scene showcasing triangle mesh geometry: a smooth-shaded
// torus next to flat-shaded icosahedron and pyramid meshes
func NewMeshScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 2, 6),
		Direction:   core.NewVec3(0, 1, 0).Subtract(core.NewVec3(0, 2, 6)),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New("mesh", cameraConfig)
	s.Ambient = core.NewVec3(0.1, 0.1, 0.1)
	s.Background = NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))

	// Main overhead light and a cool fill light
	s.AddPointLight(core.NewVec3(2, 6, 3), core.NewVec3(30, 28, 26), 1)
	s.AddPointLight(core.NewVec3(-3, 4, 2), core.NewVec3(6, 7, 8), 1)

	s.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), 0, material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))))

	torus := createTorusMesh(0.8, 0.3, 48, 24, material.NewPhong(
		core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(0.6, 0.6, 0.6), 60,
	))
	s.Add(geometry.MustTransform(
		core.Translate(core.NewVec3(0, 1, 0)).Mul(core.Rotate(core.NewVec3(1, 0, 0), 60)),
		torus,
	))

	s.Add(createIcosahedronMesh(core.NewVec3(-2, 0.7, 0), 0.7, material.NewPhong(
		core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(0.3, 0.3, 0.3), 30,
	)))

	s.Add(createPyramidMesh(core.NewVec3(2, 0, 0), 1.2, 1.4, material.NewMirror(core.NewVec3(0.8, 0.6, 0.2), 80)))

	return s
}

// createTorusMesh builds a torus around the Y axis with per-vertex normals
func createTorusMesh(majorRadius, minorRadius float64, majorSegments, minorSegments int, mat material.Material) *geometry.TriangleMesh {
	vertices := make([]core.Vec3, 0, majorSegments*minorSegments)
	for i := 0; i < majorSegments; i++ {
		u := 2 * math.Pi * float64(i) / float64(majorSegments)
		for j := 0; j < minorSegments; j++ {
			v := 2 * math.Pi * float64(j) / float64(minorSegments)
			ring := majorRadius + minorRadius*math.Cos(v)
			vertices = append(vertices, core.NewVec3(ring*math.Cos(u), minorRadius*math.Sin(v), ring*math.Sin(u)))
		}
	}

	faces := make([]int, 0, majorSegments*minorSegments*6)
	for i := 0; i < majorSegments; i++ {
		next := (i + 1) % majorSegments
		for j := 0; j < minorSegments; j++ {
			nextJ := (j + 1) % minorSegments
			a := i*minorSegments + j
			b := next*minorSegments + j
			c := next*minorSegments + nextJ
			d := i*minorSegments + nextJ
			// Wound so face normals point away from the tube center
			faces = append(faces, a, c, b, a, d, c)
		}
	}

	mesh, err := geometry.NewTriangleMesh(vertices, faces, mat, &geometry.TriangleMeshOptions{Smooth: true})
	if err != nil {
		panic(err)
	}
	return mesh
}

// createPyramidMesh creates a square-based pyramid standing on baseCenter
func createPyramidMesh(baseCenter core.Vec3, baseSize, height float64, mat material.Material) *geometry.TriangleMesh {
	halfBase := baseSize / 2
	vertices := []core.Vec3{
		baseCenter.Add(core.NewVec3(-halfBase, 0, -halfBase)), // 0: left-back
		baseCenter.Add(core.NewVec3(+halfBase, 0, -halfBase)), // 1: right-back
		baseCenter.Add(core.NewVec3(+halfBase, 0, +halfBase)), // 2: right-front
		baseCenter.Add(core.NewVec3(-halfBase, 0, +halfBase)), // 3: left-front
		baseCenter.Add(core.NewVec3(0, height, 0)),            // 4: apex
	}

	faces := []int{
		0, 1, 2, 0, 2, 3, // base (facing down)
		3, 2, 4, // front
		2, 1, 4, // right
		1, 0, 4, // back
		0, 3, 4, // left
	}

	mesh, err := geometry.NewTriangleMesh(vertices, faces, mat, nil)
	if err != nil {
		panic(err)
	}
	return mesh
}

// createIcosahedronMesh creates a flat-shaded icosahedron
func createIcosahedronMesh(center core.Vec3, radius float64, mat material.Material) *geometry.TriangleMesh {
	// Golden ratio
	phi := (1.0 + math.Sqrt(5.0)) / 2.0
	scale := radius / math.Sqrt(1+phi*phi)

	// 12 vertices of icosahedron
	vertices := []core.Vec3{
		center.Add(core.NewVec3(-1, phi, 0).Multiply(scale)),  // 0
		center.Add(core.NewVec3(1, phi, 0).Multiply(scale)),   // 1
		center.Add(core.NewVec3(-1, -phi, 0).Multiply(scale)), // 2
		center.Add(core.NewVec3(1, -phi, 0).Multiply(scale)),  // 3
		center.Add(core.NewVec3(0, -1, phi).Multiply(scale)),  // 4
		center.Add(core.NewVec3(0, 1, phi).Multiply(scale)),   // 5
		center.Add(core.NewVec3(0, -1, -phi).Multiply(scale)), // 6
		center.Add(core.NewVec3(0, 1, -phi).Multiply(scale)),  // 7
		center.Add(core.NewVec3(phi, 0, -1).Multiply(scale)),  // 8
		center.Add(core.NewVec3(phi, 0, 1).Multiply(scale)),   // 9
		center.Add(core.NewVec3(-phi, 0, -1).Multiply(scale)), // 10
		center.Add(core.NewVec3(-phi, 0, 1).Multiply(scale)),  // 11
	}

	// 20 triangular faces
	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	mesh, err := geometry.NewTriangleMesh(vertices, faces, mat, nil)
	if err != nil {
		panic(err)
	}
	return mesh
}
