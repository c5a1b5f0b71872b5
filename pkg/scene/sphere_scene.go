package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSphereScene creates a single white unit sphere lit head-on by a directional light
func NewSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		Direction:   core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: 1.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New("sphere", cameraConfig)
	s.Ambient = core.NewVec3(0.1, 0.1, 0.1)
	s.Background = NewSolidBackground(core.NewVec3(0.2, 0.2, 0.2))

	white := material.NewLambertian(core.NewVec3(1, 1, 1))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, white))
	s.AddDirectionalLight(core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1))

	return s
}
