package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
//
// Hit updates hit in place and reports whether this call found an
// intersection with tMin <= t < hit.T. Callers start a traversal with
// material.NewHitRecord() and reuse the same record for every candidate.
type Shape interface {
	Hit(ray core.Ray, tMin float64, hit *material.HitRecord) bool
}

// Validator is implemented by shapes that can check their construction parameters
type Validator interface {
	Validate() error
}
