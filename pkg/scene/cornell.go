package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell-style room from five planes with a point light under the ceiling.
// The room spans [-1,1] on every axis and is open toward +Z.
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 3.4),
		Direction:   core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        40.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New("cornell", cameraConfig)
	s.Ambient = core.NewVec3(0.05, 0.05, 0.05)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	mirror := material.NewMirror(core.NewVec3(0.9, 0.9, 0.9), 300)
	plastic := material.NewPhong(core.NewVec3(0.73, 0.73, 0.73), core.NewVec3(0.25, 0.25, 0.25), 40)

	// Walls: p·n = offset with inward-facing normals
	s.Add(
		geometry.NewPlane(core.NewVec3(0, 1, 0), -1, white),  // floor y = -1
		geometry.NewPlane(core.NewVec3(0, -1, 0), -1, white), // ceiling y = 1
		geometry.NewPlane(core.NewVec3(0, 0, 1), -1, white),  // back wall z = -1
		geometry.NewPlane(core.NewVec3(1, 0, 0), -1, red),    // left wall x = -1
		geometry.NewPlane(core.NewVec3(-1, 0, 0), -1, green), // right wall x = 1
	)

	// Tall block rotated about its vertical axis, resting on the floor
	tallBlock := geometry.MustTransform(
		core.Translate(core.NewVec3(-0.35, -0.4, -0.35)).
			Mul(core.Rotate(core.NewVec3(0, 1, 0), 18)).
			Mul(core.Scale(core.NewVec3(0.55, 1.2, 0.55))),
		geometry.NewUnitCube(plastic),
	)
	s.Add(tallBlock)

	s.Add(geometry.NewSphere(core.NewVec3(0.4, -0.6, 0.2), 0.4, mirror))

	s.AddPointLight(core.NewVec3(0, 0.9, 0), core.NewVec3(1.2, 1.1, 1.0), 1)

	return s
}
