package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		tMin           float64
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "Outside hits nearest root",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			tMin:           0.001,
			expectHit:      true,
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "Inside hits exit root with outward normal",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			tMin:           0.001,
			expectHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "Non-unit direction scales t",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -2),
			tMin:           0.001,
			expectHit:      true,
			expectedT:      2.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:         "Miss",
			rayOrigin:    core.NewVec3(2, 0, 0),
			rayDirection: core.NewVec3(0, 1, 0),
			tMin:         0.001,
			expectHit:    false,
		},
		{
			name:         "Sphere behind origin",
			rayOrigin:    core.NewVec3(0, 0, 5),
			rayDirection: core.NewVec3(0, 0, 1),
			tMin:         0.001,
			expectHit:    false,
		},
		{
			name:           "tMin skips near root",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			tMin:           4.5,
			expectHit:      true,
			expectedT:      6.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:         "Zero direction",
			rayOrigin:    core.NewVec3(0, 0, 5),
			rayDirection: core.NewVec3(0, 0, 0),
			tMin:         0.001,
			expectHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := material.NewHitRecord()
			isHit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), tt.tMin, &hit)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !tt.expectHit {
				if hit.IsHit() {
					t.Errorf("Record modified on miss: %+v", hit)
				}
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !hit.Normal.ApproxEqual(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != testMaterial {
				t.Errorf("Expected sphere material on record")
			}
		})
	}
}

func TestSphere_DoesNotOverwriteCloserHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	other := material.NewLambertian(core.NewVec3(1, 0, 0))

	hit := material.NewHitRecord()
	hit.Set(2, other, core.NewVec3(0, 1, 0))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if sphere.Hit(ray, 0.001, &hit) {
		t.Fatal("Expected no improvement over closer record")
	}
	if hit.T != 2 || hit.Material != other {
		t.Errorf("Record was modified: %+v", hit)
	}
}

func TestSphere_Validate(t *testing.T) {
	if err := NewSphere(core.Vec3{}, 1, testMaterial).Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	for _, radius := range []float64{0, -1, math.NaN()} {
		err := NewSphere(core.Vec3{}, radius, testMaterial).Validate()
		if !errors.Is(err, ErrDegenerate) {
			t.Errorf("Radius %v: expected ErrDegenerate, got %v", radius, err)
		}
	}
}
