package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestTransform_TranslatedSphere(t *testing.T) {
	offset := core.NewVec3(2, -1, 3)
	direct := NewSphere(offset, 1, testMaterial)
	instanced := MustTransform(core.Translate(offset), NewSphere(core.Vec3{}, 1, testMaterial))

	rays := []core.Ray{
		core.NewRay(core.NewVec3(2, -1, 10), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0, 0, 0), offset.Normalize()),
		core.NewRay(core.NewVec3(2.5, -0.5, 10), core.NewVec3(0, 0, -2)),
		core.NewRay(core.NewVec3(2, -1, 3), core.NewVec3(1, 0, 0)), // From inside
	}

	for i, ray := range rays {
		want := material.NewHitRecord()
		got := material.NewHitRecord()
		wantHit := direct.Hit(ray, 0.001, &want)
		gotHit := instanced.Hit(ray, 0.001, &got)

		if wantHit != gotHit {
			t.Fatalf("Ray %d: direct hit=%v, transformed hit=%v", i, wantHit, gotHit)
		}
		if !wantHit {
			continue
		}
		if math.Abs(want.T-got.T) > 1e-9 {
			t.Errorf("Ray %d: expected t=%f, got %f", i, want.T, got.T)
		}
		if !want.Normal.ApproxEqual(got.Normal, 1e-9) {
			t.Errorf("Ray %d: expected normal %v, got %v", i, want.Normal, got.Normal)
		}
	}
}

func TestTransform_ScaledSphereNormal(t *testing.T) {
	// Ellipsoid with semi-axes (2, 1, 1)
	ellipsoid := MustTransform(core.Scale(core.NewVec3(2, 1, 1)), NewSphere(core.Vec3{}, 1, testMaterial))

	// Hit the point (sqrt(2), sqrt(2)/2, 0) on the ellipsoid from outside along -y
	x := math.Sqrt2
	ray := core.NewRay(core.NewVec3(x, 5, 0), core.NewVec3(0, -1, 0))
	hit := material.NewHitRecord()
	if !ellipsoid.Hit(ray, 0.001, &hit) {
		t.Fatal("Expected hit")
	}

	expectedT := 5 - math.Sqrt2/2
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f in world units, got %f", expectedT, hit.T)
	}

	// Gradient of x²/4 + y² is (x/2, 2y)
	p := ray.At(hit.T)
	expectedNormal := core.NewVec3(p.X/2, 2*p.Y, 0).Normalize()
	if !hit.Normal.ApproxEqual(expectedNormal, 1e-9) {
		t.Errorf("Expected normal %v, got %v", expectedNormal, hit.Normal)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-12 {
		t.Errorf("Normal not renormalized: %v", hit.Normal)
	}
}

func TestTransform_RotationRoundTrip(t *testing.T) {
	m := core.Translate(core.NewVec3(0, 1, -4)).
		Mul(core.Rotate(core.NewVec3(0, 1, 0), 45)).
		Mul(core.Scale(core.NewVec3(1, 2, 0.5)))
	box := NewUnitCube(testMaterial)
	transformed := MustTransform(m, box)

	// A ray built in local space and mapped to world space must hit at the same t
	localRay := core.NewRay(core.NewVec3(0.1, 0.2, 5), core.NewVec3(0, 0, -1))
	worldRay := core.NewRay(m.TransformPoint(localRay.Origin), m.TransformDirection(localRay.Direction))

	local := material.NewHitRecord()
	world := material.NewHitRecord()
	if !box.Hit(localRay, 0.001, &local) || !transformed.Hit(worldRay, 0.001, &world) {
		t.Fatal("Expected both rays to hit")
	}
	if math.Abs(local.T-world.T) > 1e-9 {
		t.Errorf("Expected t=%f in both frames, got %f", local.T, world.T)
	}

	hitPoint := worldRay.At(world.T)
	if !m.TransformPoint(localRay.At(local.T)).ApproxEqual(hitPoint, 1e-9) {
		t.Errorf("Hit points do not correspond")
	}
}

func TestTransform_Nested(t *testing.T) {
	inner := MustTransform(core.Translate(core.NewVec3(1, 0, 0)), NewSphere(core.Vec3{}, 0.5, testMaterial))
	outer := MustTransform(core.Translate(core.NewVec3(0, 2, 0)), inner)

	hit := material.NewHitRecord()
	ray := core.NewRay(core.NewVec3(1, 2, 5), core.NewVec3(0, 0, -1))
	if !outer.Hit(ray, 0.001, &hit) {
		t.Fatal("Expected hit on nested transform")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got %f", hit.T)
	}
}

func TestTransform_Errors(t *testing.T) {
	if _, err := NewTransform(core.Scale(core.NewVec3(1, 0, 1)), NewSphere(core.Vec3{}, 1, testMaterial)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate for singular matrix, got %v", err)
	}
	if _, err := NewTransform(core.Identity(), nil); !errors.Is(err, ErrNilShape) {
		t.Errorf("Expected ErrNilShape, got %v", err)
	}
}
