package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	// Default camera configuration
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2),
		Direction:   core.NewVec3(0, 0.5, -1).Subtract(core.NewVec3(0, 0.75, 2)),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New("default", cameraConfig)
	s.Ambient = core.NewVec3(0.1, 0.1, 0.1)
	s.Background = NewGradientBackground(
		core.NewVec3(0.5, 0.7, 1.0), // topColor (blue sky)
		core.NewVec3(1.0, 1.0, 1.0), // bottomColor (white horizon)
	)

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	plasticRed := material.NewPhong(core.NewVec3(0.65, 0.25, 0.2), core.NewVec3(0.3, 0.3, 0.3), 32)
	mirrorSilver := material.NewMirror(core.NewVec3(0.8, 0.8, 0.8), 200)
	phongGold := material.NewPhong(core.NewVec3(0.8, 0.6, 0.2), core.NewVec3(0.6, 0.5, 0.3), 64)

	// Create spheres with different materials
	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, plasticRed)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, mirrorSilver)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, phongGold)
	smallSphere := geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, lambertianBlue)

	ground := geometry.NewPlane(core.NewVec3(0, 1, 0), 0, lambertianGreen)

	s.Add(sphereCenter, sphereLeft, sphereRight, smallSphere, ground)

	// Sun plus a warm fill light
	s.AddDirectionalLight(core.NewVec3(-1, -2, -1), core.NewVec3(0.8, 0.8, 0.8))
	s.AddPointLight(core.NewVec3(1.5, 2, 0.5), core.NewVec3(2.0, 1.8, 1.5), 1)

	return s
}
