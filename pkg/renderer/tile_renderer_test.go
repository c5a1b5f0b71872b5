package renderer

import (
	"image"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// recordingCamera records every NDC it is asked for and aims the ray along -z through it
type recordingCamera struct {
	ndcs []core.Vec2
}

func (c *recordingCamera) GenerateRay(ndc core.Vec2) core.Ray {
	c.ndcs = append(c.ndcs, ndc)
	return core.NewRay(core.NewVec3(ndc.X, ndc.Y, 0), core.NewVec3(0, 0, -1))
}

func (c *recordingCamera) TMin() float64 { return 0 }

// constantIntegrator returns the same radiance and hit for every ray
type constantIntegrator struct {
	radiance core.Vec3
	hit      material.HitRecord
	calls    int
}

func (ci *constantIntegrator) TraceRay(ray core.Ray, tMin float64, bounces int) (core.Vec3, material.HitRecord) {
	ci.calls++
	return ci.radiance, ci.hit
}

func (ci *constantIntegrator) Stats() integrator.TraceStats { return integrator.TraceStats{} }
func (ci *constantIntegrator) ResetStats() {}

func newHitIntegrator(t float64, normal core.Vec3) *constantIntegrator {
	hit := material.NewHitRecord()
	hit.Set(t, material.NewLambertian(core.NewVec3(1, 1, 1)), normal)
	return &constantIntegrator{radiance: core.NewVec3(0.5, 0.25, 1), hit: hit}
}

func testRenderConfig(width, height int) RenderConfig {
	config := DefaultRenderConfig()
	config.Width = width
	config.Height = height
	return config
}

func TestPixelToNDC(t *testing.T) {
	tests := []struct {
		name     string
		p        float64
		n        int
		expected float64
	}{
		{"First pixel", 0, 5, -1},
		{"Last pixel", 4, 5, 1},
		{"Centre pixel", 2, 5, 0},
		{"Single pixel axis", 0, 1, 0},
		{"Sub-pixel offset", 1.5, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pixelToNDC(tt.p, tt.n); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestTileRenderer_PlainSampling(t *testing.T) {
	camera := &recordingCamera{}
	integ := newHitIntegrator(4, core.NewVec3(0, 0, 1))
	config := testRenderConfig(3, 3)
	frame := NewFrame(3, 3)

	tr := NewTileRenderer(camera, integ, config)
	stats := tr.RenderTileBounds(image.Rect(0, 0, 3, 3), frame, core.NewSeededSampler(1))

	if integ.calls != 9 || stats.TotalSamples != 9 || stats.TotalPixels != 9 {
		t.Fatalf("Expected 9 rays for 9 pixels, got calls=%d samples=%d pixels=%d",
			integ.calls, stats.TotalSamples, stats.TotalPixels)
	}

	// Rays go through exact pixel centres, row by row from the bottom
	expected := []core.Vec2{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}}
	for i, ndc := range expected {
		if camera.ndcs[i] != ndc {
			t.Errorf("Sample %d: expected NDC %v, got %v", i, ndc, camera.ndcs[i])
		}
	}

	if got := frame.Color.GetPixel(1, 1); !got.ApproxEqual(integ.radiance, 1e-12) {
		t.Errorf("Expected color %v, got %v", integ.radiance, got)
	}
}

func TestTileRenderer_JitterSampling(t *testing.T) {
	camera := &recordingCamera{}
	integ := newHitIntegrator(4, core.NewVec3(0, 0, 1))
	config := testRenderConfig(5, 5)
	config.Jitter = true
	frame := NewFrame(5, 5)

	tr := NewTileRenderer(camera, integ, config)
	tr.RenderTileBounds(image.Rect(2, 2, 3, 3), frame, core.NewSeededSampler(3))

	if len(camera.ndcs) != config.Samples {
		t.Fatalf("Expected %d samples, got %d", config.Samples, len(camera.ndcs))
	}

	// One pixel spans 0.5 in NDC on a 5 pixel axis; offsets stay within one pixel
	distinct := make(map[core.Vec2]bool)
	for _, ndc := range camera.ndcs {
		if math.Abs(ndc.X) > 0.5 || math.Abs(ndc.Y) > 0.5 {
			t.Errorf("Jittered sample %v strays more than one pixel from the centre", ndc)
		}
		distinct[ndc] = true
	}
	if len(distinct) < 2 {
		t.Errorf("Jittered samples should not coincide")
	}

	// Constant radiance averages to itself
	if got := frame.Color.GetPixel(2, 2); !got.ApproxEqual(integ.radiance, 1e-9) {
		t.Errorf("Expected color %v, got %v", integ.radiance, got)
	}
}

func TestTileRenderer_FilterWeights(t *testing.T) {
	tests := []struct {
		name   string
		jitter bool
	}{
		{"Fixed grid", false},
		{"Jittered grid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testRenderConfig(4, 4)
			config.Filter = true
			config.Jitter = tt.jitter

			tr := NewTileRenderer(&recordingCamera{}, &constantIntegrator{}, config)
			samples := tr.pixelSamples(nil, core.NewSeededSampler(9))
			if len(samples) != 9 {
				t.Fatalf("Expected 9 filter samples, got %d", len(samples))
			}

			total := 0.0
			for _, s := range samples {
				total += s.weight
				if math.Abs(s.offset.X) > 0.5+1e-12 || math.Abs(s.offset.Y) > 0.5+1e-12 {
					t.Errorf("Filter sample %v leaves the pixel", s.offset)
				}
			}
			if math.Abs(total-1) > 1e-12 {
				t.Errorf("Filter weights sum to %f", total)
			}
			if !tt.jitter && (samples[4].offset != core.Vec2{} || samples[4].weight != 0.25) {
				t.Errorf("Expected centre sample with weight 0.25, got %+v", samples[4])
			}
		})
	}
}

func TestTileRenderer_NormalAndDepth(t *testing.T) {
	integ := newHitIntegrator(10, core.NewVec3(0, 1, 0))

	tests := []struct {
		name          string
		depthMin      float64
		depthMax      float64
		expectedDepth float64
	}{
		{"Depth range set", 8, 18, 0.2},
		{"Empty depth range", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testRenderConfig(1, 1)
			config.DepthMin = tt.depthMin
			config.DepthMax = tt.depthMax
			frame := NewFrame(1, 1)

			NewTileRenderer(&recordingCamera{}, integ, config).
				RenderTileBounds(image.Rect(0, 0, 1, 1), frame, core.NewSeededSampler(0))

			if got := frame.Normals.GetPixel(0, 0); !got.ApproxEqual(core.NewVec3(0.5, 1, 0.5), 1e-12) {
				t.Errorf("Expected encoded normal (0.5,1,0.5), got %v", got)
			}
			if got := frame.Depth.GetPixel(0, 0); !got.ApproxEqual(core.Splat(tt.expectedDepth), 1e-12) {
				t.Errorf("Expected depth %f, got %v", tt.expectedDepth, got)
			}
		})
	}
}

func TestTileRenderer_MissLeavesNormalAndDepthBlack(t *testing.T) {
	integ := &constantIntegrator{radiance: core.NewVec3(0.2, 0.2, 0.2), hit: material.NewHitRecord()}
	frame := NewFrame(2, 2)

	NewTileRenderer(&recordingCamera{}, integ, testRenderConfig(2, 2)).
		RenderTileBounds(image.Rect(0, 0, 2, 2), frame, core.NewSeededSampler(0))

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if !frame.Normals.GetPixel(x, y).IsZero() || !frame.Depth.GetPixel(x, y).IsZero() {
				t.Errorf("Pixel (%d,%d) should have zero normal and depth on a miss", x, y)
			}
			if !frame.Color.GetPixel(x, y).ApproxEqual(integ.radiance, 1e-12) {
				t.Errorf("Pixel (%d,%d) should carry the background color", x, y)
			}
		}
	}
}
