package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Phong is a diffuse + specular material using the Phong reflection model
type Phong struct {
	Diffuse   core.Vec3 // Diffuse reflectance, also used for ambient light
	Specular  core.Vec3 // Specular reflectance, also the mirror reflection weight
	Shininess float64   // Phong exponent
}

// NewPhong creates a new Phong material
func NewPhong(diffuse, specular core.Vec3, shininess float64) *Phong {
	if shininess < 0 {
		shininess = 0
	}
	return &Phong{Diffuse: diffuse, Specular: specular, Shininess: shininess}
}

// NewLambertian creates a purely diffuse material with no highlight or reflection
func NewLambertian(albedo core.Vec3) *Phong {
	return NewPhong(albedo, core.Vec3{}, 0)
}

// NewMirror creates a reflective material tinted by color with a faint diffuse base
func NewMirror(color core.Vec3, shininess float64) *Phong {
	return NewPhong(color.Multiply(0.05), color, shininess)
}

// DiffuseColor returns the diffuse reflectance
func (p *Phong) DiffuseColor() core.Vec3 {
	return p.Diffuse
}

// SpecularColor returns the specular reflectance
func (p *Phong) SpecularColor() core.Vec3 {
	return p.Specular
}

// Shade implements the Material interface.
// Diffuse and specular lobes are clamped independently so a light behind
// the surface contributes nothing to either.
func (p *Phong) Shade(ray core.Ray, hit HitRecord, dirToLight, lightIntensity core.Vec3) core.Vec3 {
	normal := hit.Normal
	view := ray.Direction.Negate().Normalize()

	nDotL := dirToLight.Dot(normal)
	// Mirror of L about N: 2N(L·N) - L
	reflected := normal.Multiply(2 * nDotL).Subtract(dirToLight)

	diffuse := p.Diffuse.Multiply(math.Max(nDotL, 0))

	var specular core.Vec3
	if rDotV := reflected.Dot(view); rDotV > 0 && !p.Specular.IsZero() {
		specular = p.Specular.Multiply(math.Pow(rDotV, p.Shininess))
	}

	return lightIntensity.MultiplyVec(diffuse.Add(specular))
}
