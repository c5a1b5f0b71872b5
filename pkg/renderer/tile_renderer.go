package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sub-pixel grid used by the filter, in pixel units, and its separable [1,2,1] weights
var (
	filterOffsets = [3]float64{-1.0 / 3.0, 0, 1.0 / 3.0}
	filterWeights = [3]float64{1, 2, 1}
)

// filterJitter bounds the per-sample offset inside a filter sub-cell
const filterJitter = 1.0 / 6.0

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     core.Camera
	integrator integrator.Integrator
	config     RenderConfig
}

// NewTileRenderer creates a new tile renderer with the given camera and integrator
func NewTileRenderer(camera core.Camera, integratorInst integrator.Integrator, config RenderConfig) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		config:     config,
	}
}

// pixelSample is a sub-pixel offset with its weight in the pixel average
type pixelSample struct {
	offset core.Vec2
	weight float64
}

// RenderTileBounds renders every pixel inside bounds into frame.
// Tiles never overlap, so concurrent calls on disjoint bounds are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, frame *Frame, sampler core.Sampler) RenderStats {
	stats := RenderStats{Tiles: 1}
	samples := make([]pixelSample, 0, tr.config.SamplesPerPixel())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			samples = tr.pixelSamples(samples[:0], sampler)
			color, normal, depth := tr.renderPixel(x, y, samples)

			frame.Color.SetPixel(x, y, color)
			frame.Normals.SetPixel(x, y, normal)
			frame.Depth.SetPixel(x, y, depth)

			stats.TotalPixels++
			stats.TotalSamples += len(samples)
		}
	}

	return stats
}

// pixelSamples appends the sub-pixel offsets for one pixel according to the sampling mode
func (tr *TileRenderer) pixelSamples(samples []pixelSample, sampler core.Sampler) []pixelSample {
	switch {
	case tr.config.Filter:
		for j, oy := range filterOffsets {
			for i, ox := range filterOffsets {
				offset := core.NewVec2(ox, oy)
				if tr.config.Jitter {
					offset = offset.Add(core.SampleSymmetric(sampler.Get2D(), filterJitter))
				}
				samples = append(samples, pixelSample{
					offset: offset,
					weight: filterWeights[i] * filterWeights[j] / 16,
				})
			}
		}
	case tr.config.Jitter:
		weight := 1 / float64(tr.config.Samples)
		for s := 0; s < tr.config.Samples; s++ {
			samples = append(samples, pixelSample{
				offset: core.SampleSymmetric(sampler.Get2D(), 1),
				weight: weight,
			})
		}
	default:
		samples = append(samples, pixelSample{weight: 1})
	}
	return samples
}

// renderPixel traces all samples of a pixel and returns the weighted color,
// encoded normal and normalized depth
func (tr *TileRenderer) renderPixel(x, y int, samples []pixelSample) (core.Vec3, core.Vec3, core.Vec3) {
	var color, normal core.Vec3
	var depth float64

	for _, s := range samples {
		ndc := core.NewVec2(
			pixelToNDC(float64(x)+s.offset.X, tr.config.Width),
			pixelToNDC(float64(y)+s.offset.Y, tr.config.Height),
		)
		ray := tr.camera.GenerateRay(ndc)

		radiance, hit := tr.integrator.TraceRay(ray, tr.camera.TMin(), tr.config.Bounces)
		color = color.Add(radiance.Multiply(s.weight))

		// Misses add nothing to the normal and depth averages
		if hit.IsHit() {
			normal = normal.Add(encodeNormal(hit).Multiply(s.weight))
			if tr.config.HasDepthRange() {
				depth += s.weight * (hit.T - tr.config.DepthMin) / (tr.config.DepthMax - tr.config.DepthMin)
			}
		}
	}

	return color, normal, core.Splat(depth)
}

// pixelToNDC maps a pixel coordinate in [0, n-1] to [-1, 1]; a single-pixel axis maps to 0
func pixelToNDC(p float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return 2*p/float64(n-1) - 1
}

// encodeNormal maps a unit normal from [-1,1]³ to [0,1]³
func encodeNormal(hit material.HitRecord) core.Vec3 {
	return hit.Normal.Add(core.Splat(1)).Multiply(0.5)
}
