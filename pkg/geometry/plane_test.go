package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestPlane_Hit(t *testing.T) {
	// Ground plane y = -1
	plane := NewPlane(core.NewVec3(0, 1, 0), -1, testMaterial)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "Straight down",
			ray:       core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)),
			expectHit: true,
			expectedT: 2,
		},
		{
			name:      "From below",
			ray:       core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)),
			expectHit: true,
			expectedT: 2,
		},
		{
			name:      "Oblique",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, -1, 0)),
			expectHit: true,
			expectedT: 1,
		},
		{
			name:      "Pointing away",
			ray:       core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := material.NewHitRecord()
			isHit := plane.Hit(tt.ray, 0.001, &hit)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			// Normal is never flipped toward the ray
			if !hit.Normal.ApproxEqual(core.NewVec3(0, 1, 0), 1e-12) {
				t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
			}
		})
	}
}

func TestPlane_ParallelNeverHits(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 1), 2, testMaterial)
	directions := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(-3, 0.5, 0),
	}
	origins := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 2), // In the plane
		core.NewVec3(5, -5, 10),
	}

	for _, o := range origins {
		for _, d := range directions {
			hit := material.NewHitRecord()
			if plane.Hit(core.NewRay(o, d), 0, &hit) {
				t.Errorf("Parallel ray from %v along %v hit at t=%f", o, d, hit.T)
			}
		}
	}
}

func TestPlane_NormalizesInput(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 2, 0), 4, testMaterial)
	if !plane.Normal.ApproxEqual(core.NewVec3(0, 1, 0), 1e-12) || plane.Offset != 2 {
		t.Errorf("Expected normal (0,1,0) offset 2, got %v %f", plane.Normal, plane.Offset)
	}

	through := NewPlaneThroughPoint(core.NewVec3(3, 5, 7), core.NewVec3(0, 0, -1), testMaterial)
	if math.Abs(through.Offset-(-7)) > 1e-12 {
		t.Errorf("Expected offset -7, got %f", through.Offset)
	}
}

func TestPlane_Validate(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), 1, testMaterial)
	if err := plane.Validate(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate for zero normal, got %v", err)
	}
}
