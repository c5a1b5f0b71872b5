package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

var (
	ErrNoCamera     = errors.New("scene: no camera")
	ErrNoGeometry   = errors.New("scene: no root geometry")
	ErrNilLight     = errors.New("scene: nil light")
	ErrUnknownScene = errors.New("scene: unknown scene")
)

// Scene contains all the elements needed for rendering. It is read-only
// once rendering starts and may be shared by every worker.
type Scene struct {
	Name         string
	Camera       core.Camera
	CameraConfig geometry.CameraConfig
	Root         *geometry.Group // Objects in the scene
	Lights       []lights.Light  // Lights in the scene
	Ambient      core.Vec3       // Ambient light color
	Background   Background      // Color for rays that miss everything
}

// New creates an empty scene with a black background
func New(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Camera:       geometry.NewPerspectiveCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Root:         geometry.NewGroup(),
		Lights:       make([]lights.Light, 0),
		Background:   NewSolidBackground(core.Vec3{}),
	}
}

// Add appends shapes to the root group
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Root.Add(shapes...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// AddDirectionalLight adds a light shining along direction
func (s *Scene) AddDirectionalLight(direction, color core.Vec3) {
	s.AddLight(lights.NewDirectionalLight(direction, color))
}

// AddPointLight adds an attenuated point light
func (s *Scene) AddPointLight(position, color core.Vec3, falloff float64) {
	s.AddLight(lights.NewPointLight(position, color, falloff))
}

// RootGeometry returns the shape every ray is tested against
func (s *Scene) RootGeometry() geometry.Shape {
	return s.Root
}

// AmbientLight returns the ambient light color
func (s *Scene) AmbientLight() core.Vec3 {
	return s.Ambient
}

// BackgroundColor returns the color seen along a ray that hits nothing
func (s *Scene) BackgroundColor(direction core.Vec3) core.Vec3 {
	if s.Background == nil {
		return core.Vec3{}
	}
	return s.Background.Color(direction)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.Root == nil {
		return 0
	}
	return geometry.CountPrimitives(s.Root)
}

// Validate reports the first problem that would make the scene unrenderable
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	if s.Root == nil {
		return ErrNoGeometry
	}
	if err := s.Root.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	for i, l := range s.Lights {
		if l == nil {
			return fmt.Errorf("scene %q: light %d: %w", s.Name, i, ErrNilLight)
		}
	}
	return nil
}
