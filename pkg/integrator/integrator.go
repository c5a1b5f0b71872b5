package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// TraceRay returns the radiance arriving along ray and the primary hit record.
	// bounces limits the remaining depth of secondary (reflection) rays.
	TraceRay(ray core.Ray, tMin float64, bounces int) (core.Vec3, material.HitRecord)

	// Stats returns the counters accumulated since creation or the last ResetStats
	Stats() TraceStats
	ResetStats()
}

// TraceStats counts the rays traced by one integrator instance
type TraceStats struct {
	CameraRays     int64 // Primary rays passed to TraceRay
	ShadowRays     int64 // Visibility rays cast toward lights
	OccludedRays   int64 // Shadow rays that found an occluder before the light
	ReflectionRays int64 // Secondary rays spawned at specular surfaces
	Misses         int64 // Rays of any kind except shadow rays that hit nothing
}

// Add accumulates other into s
func (s *TraceStats) Add(other TraceStats) {
	s.CameraRays += other.CameraRays
	s.ShadowRays += other.ShadowRays
	s.OccludedRays += other.OccludedRays
	s.ReflectionRays += other.ReflectionRays
	s.Misses += other.Misses
}
