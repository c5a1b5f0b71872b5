package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewArchScene builds a stone arch from one shared cube mesh instanced through
// Transform nodes, reflected in a mirror floor
func NewArchScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(1.5, 2.5, 8),
		Direction:   core.NewVec3(0, 1.5, 0).Subtract(core.NewVec3(1.5, 2.5, 8)),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New("arch", cameraConfig)
	s.Ambient = core.NewVec3(0.08, 0.08, 0.08)
	s.Background = NewGradientBackground(core.NewVec3(0.95, 0.6, 0.4), core.NewVec3(0.3, 0.3, 0.5))

	s.AddDirectionalLight(core.NewVec3(-1, -0.7, -0.8), core.NewVec3(1.0, 0.85, 0.7))
	s.AddPointLight(core.NewVec3(0, 1.2, 2.5), core.NewVec3(2, 2, 2.5), 1)

	floor := material.NewPhong(core.NewVec3(0.15, 0.15, 0.18), core.NewVec3(0.5, 0.5, 0.5), 400)
	s.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), 0, floor))

	stone := material.NewPhong(core.NewVec3(0.75, 0.7, 0.6), core.NewVec3(0.1, 0.1, 0.1), 10)
	block := geometry.NewUnitCube(stone)

	const (
		blocks     = 13
		archRadius = 2.0
		pierHeight = 1.0
	)

	// Voussoirs along a half circle, each rotated to follow the curve
	for i := 0; i < blocks; i++ {
		theta := math.Pi * float64(i) / float64(blocks-1)
		position := core.NewVec3(archRadius*math.Cos(theta), pierHeight+archRadius*math.Sin(theta), 0)
		s.Add(geometry.MustTransform(
			core.Translate(position).
				Mul(core.Rotate(core.NewVec3(0, 0, 1), theta*180/math.Pi)).
				Mul(core.Scale(core.NewVec3(0.5, 0.45, 0.6))),
			block,
		))
	}

	// Piers under each end of the arch
	for _, x := range []float64{-archRadius, archRadius} {
		s.Add(geometry.MustTransform(
			core.Translate(core.NewVec3(x, pierHeight/2, 0)).
				Mul(core.Scale(core.NewVec3(0.55, pierHeight, 0.65))),
			block,
		))
	}

	return s
}
