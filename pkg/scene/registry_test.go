package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"sphere-grid", "Sphere Grid"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestCreate_AllBuiltinScenes(t *testing.T) {
	infos := ListScenes()
	if len(infos) != len(builtinScenes) {
		t.Fatalf("Expected %d scenes, got %d", len(builtinScenes), len(infos))
	}

	seen := make(map[string]bool)
	for _, info := range infos {
		t.Run(info.ID, func(t *testing.T) {
			if seen[info.ID] {
				t.Fatalf("Duplicate scene id %q", info.ID)
			}
			seen[info.ID] = true

			if info.DisplayName == "" || info.Description == "" || info.Group == "" {
				t.Errorf("Incomplete scene info: %+v", info)
			}

			s, err := Create(info.ID)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", info.ID, err)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Errorf("Scene %q has no primitives", info.ID)
			}
			if len(s.Lights) == 0 {
				t.Errorf("Scene %q has no lights", info.ID)
			}
		})
	}
}

func TestCreate_UnknownScene(t *testing.T) {
	if _, err := Create("no-such-scene"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestCreate_CameraOverride(t *testing.T) {
	s, err := Create("default", geometry.CameraConfig{AspectRatio: 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.CameraConfig.AspectRatio != 1 {
		t.Errorf("Expected overridden aspect ratio 1, got %f", s.CameraConfig.AspectRatio)
	}
	if s.CameraConfig.VFov != 40 {
		t.Errorf("Expected default fov to survive override, got %f", s.CameraConfig.VFov)
	}
}

func TestNewSphereScene(t *testing.T) {
	s := NewSphereScene()

	ray := s.Camera.GenerateRay(core.NewVec2(0, 0))
	if !ray.Origin.ApproxEqual(core.NewVec3(0, 0, 5), 1e-12) || !ray.Direction.ApproxEqual(core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Unexpected center ray %+v", ray)
	}

	hit := material.NewHitRecord()
	if !s.RootGeometry().Hit(ray, s.Camera.TMin(), &hit) {
		t.Fatal("Center ray should hit the sphere")
	}
	if !hit.Normal.ApproxEqual(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	if len(s.Lights) != 1 {
		t.Fatalf("Expected a single light, got %d", len(s.Lights))
	}
	directional, ok := s.Lights[0].(*lights.DirectionalLight)
	if !ok || !directional.Direction.ApproxEqual(core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected directional light along -z, got %+v", s.Lights[0])
	}
}

func TestOklchToRGB(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 30 {
		c := oklchToRGB(0.65, 0.2, hue)
		for _, v := range []float64{c.X, c.Y, c.Z} {
			if v < 0 || v > 1 {
				t.Errorf("Hue %f produced out of range color %v", hue, c)
			}
		}
	}

	// Zero chroma is achromatic
	gray := oklchToRGB(0.5, 0, 0)
	if !gray.ApproxEqual(core.Splat(gray.X), 1e-6) {
		t.Errorf("Expected gray, got %v", gray)
	}
}
