package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTransformsScene shows non-uniform scaling, rotation, shear and nesting through Transform nodes
func NewTransformsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 2, 7),
		Direction:   core.NewVec3(0, 0.6, 0).Subtract(core.NewVec3(0, 2, 7)),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New("transforms", cameraConfig)
	s.Ambient = core.NewVec3(0.1, 0.1, 0.1)
	s.Background = NewGradientBackground(core.NewVec3(0.4, 0.5, 0.8), core.NewVec3(0.9, 0.9, 0.9))

	s.AddDirectionalLight(core.NewVec3(-0.5, -1, -0.6), core.NewVec3(0.9, 0.9, 0.9))
	s.AddPointLight(core.NewVec3(-3, 3, 3), core.NewVec3(4, 4, 4.5), 1)

	s.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), 0, material.NewLambertian(core.NewVec3(0.6, 0.6, 0.55))))

	unitSphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewPhong(
		core.NewVec3(0.2, 0.4, 0.8), core.NewVec3(0.5, 0.5, 0.5), 50,
	))

	// Flattened, tilted ellipsoid
	ellipsoid := geometry.MustTransform(
		core.Translate(core.NewVec3(-2.2, 0.8, 0)).
			Mul(core.Rotate(core.NewVec3(0, 0, 1), 30)).
			Mul(core.Scale(core.NewVec3(1.0, 0.5, 0.7))),
		unitSphere,
	)

	// Box rotated off every axis
	cube := geometry.MustTransform(
		core.Translate(core.NewVec3(0, 0.9, -0.5)).
			Mul(core.Rotate(core.NewVec3(1, 1, 0), 35)).
			Mul(core.UniformScale(1.1)),
		geometry.NewUnitCube(material.NewPhong(core.NewVec3(0.8, 0.3, 0.2), core.NewVec3(0.3, 0.3, 0.3), 20)),
	)

	// Sheared sphere written out as explicit matrix rows
	sheared := geometry.MustTransform(
		core.NewMat4FromRows(
			[4]float64{0.6, 0.3, 0, 2.2},
			[4]float64{0, 0.6, 0, 0.6},
			[4]float64{0, 0, 0.6, 0.3},
			[4]float64{0, 0, 0, 1},
		),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewMirror(core.NewVec3(0.85, 0.85, 0.9), 150)),
	)

	// Nested transforms: a small ring of spheres rotated as a group
	ring := geometry.NewGroup()
	for i := 0; i < 6; i++ {
		ring.Add(geometry.MustTransform(
			core.Rotate(core.NewVec3(0, 1, 0), float64(i)*60).
				Mul(core.Translate(core.NewVec3(0.6, 0, 0))).
				Mul(core.UniformScale(0.15)),
			unitSphere,
		))
	}
	tiltedRing := geometry.MustTransform(
		core.Translate(core.NewVec3(0.2, 0.25, 1.6)).Mul(core.Rotate(core.NewVec3(1, 0, 0), 15)),
		ring,
	)

	s.Add(ellipsoid, cube, sheared, tiltedRing)
	return s
}
