package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	// ShadowEpsilon offsets shadow ray origins along the light direction and is their tMin
	ShadowEpsilon = 1e-4
	// ReflectionEpsilon is the tMin of reflected rays
	ReflectionEpsilon = 1e-4
)

// Config controls optional parts of the light transport
type Config struct {
	Shadows bool // Cast shadow rays toward every light
}

// WhittedIntegrator implements recursive ray tracing with Phong direct lighting,
// hard shadows and perfect mirror reflection. An instance is not safe for
// concurrent use: give every worker its own.
type WhittedIntegrator struct {
	scene  *scene.Scene
	config Config
	stats  TraceStats
}

// NewWhittedIntegrator creates a new Whitted integrator for a read-only scene
func NewWhittedIntegrator(s *scene.Scene, config Config) *WhittedIntegrator {
	return &WhittedIntegrator{
		scene:  s,
		config: config,
	}
}

// TraceRay computes the radiance along a primary ray
func (wi *WhittedIntegrator) TraceRay(ray core.Ray, tMin float64, bounces int) (core.Vec3, material.HitRecord) {
	wi.stats.CameraRays++
	return wi.trace(ray, tMin, bounces)
}

func (wi *WhittedIntegrator) trace(ray core.Ray, tMin float64, bounces int) (core.Vec3, material.HitRecord) {
	hit := material.NewHitRecord()
	if !wi.scene.RootGeometry().Hit(ray, tMin, &hit) || hit.Material == nil {
		wi.stats.Misses++
		return wi.scene.BackgroundColor(ray.Direction), material.NewHitRecord()
	}

	point := ray.At(hit.T)
	radiance := wi.scene.AmbientLight().MultiplyVec(hit.Material.DiffuseColor())
	radiance = radiance.Add(wi.directLighting(ray, hit, point))

	if bounces > 0 {
		radiance = radiance.Add(wi.reflection(ray, hit, point, bounces))
	}

	return radiance, hit
}

// directLighting sums the Phong contribution of every unoccluded light
func (wi *WhittedIntegrator) directLighting(ray core.Ray, hit material.HitRecord, point core.Vec3) core.Vec3 {
	var total core.Vec3
	for _, light := range wi.scene.Lights {
		illumination := light.Illuminate(point)
		if illumination.Intensity.IsZero() {
			continue
		}
		if wi.config.Shadows && wi.occluded(point, illumination) {
			continue
		}
		total = total.Add(hit.Material.Shade(ray, hit, illumination.Direction, illumination.Intensity))
	}
	return total
}

// occluded reports whether any surface lies between point and the light
func (wi *WhittedIntegrator) occluded(point core.Vec3, illumination lights.Illumination) bool {
	wi.stats.ShadowRays++
	shadowRay := core.NewRay(point.Add(illumination.Direction.Multiply(ShadowEpsilon)), illumination.Direction)

	shadowHit := material.NewHitRecord()
	if wi.scene.RootGeometry().Hit(shadowRay, ShadowEpsilon, &shadowHit) && shadowHit.T < illumination.Distance {
		wi.stats.OccludedRays++
		return true
	}
	return false
}

// reflection traces the mirror direction and tints the result by the specular color
func (wi *WhittedIntegrator) reflection(ray core.Ray, hit material.HitRecord, point core.Vec3, bounces int) core.Vec3 {
	specular := hit.Material.SpecularColor()
	if specular.IsZero() {
		return core.Vec3{}
	}

	wi.stats.ReflectionRays++
	reflected := core.NewRay(point, ray.Direction.Reflect(hit.Normal).Normalize())
	color, _ := wi.trace(reflected, ReflectionEpsilon, bounces-1)
	return color.MultiplyVec(specular)
}

// Stats returns the counters accumulated so far
func (wi *WhittedIntegrator) Stats() TraceStats {
	return wi.stats
}

// ResetStats zeroes the counters
func (wi *WhittedIntegrator) ResetStats() {
	wi.stats = TraceStats{}
}
