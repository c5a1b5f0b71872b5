package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// Background provides the color of rays that leave the scene
type Background interface {
	Color(direction core.Vec3) core.Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	RGB core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{RGB: color}
}

// Color returns the constant color
func (b *SolidBackground) Color(direction core.Vec3) core.Vec3 {
	return b.RGB
}

// GradientBackground blends vertically between two colors
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a sky-style gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// Color returns a gradient color based on ray direction
func (b *GradientBackground) Color(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// EnvironmentMap looks up an equirectangular (latitude/longitude) image by direction.
// +Y is up and the image center faces -Z.
type EnvironmentMap struct {
	Image    *loaders.ImageData
	Exposure float64 // Multiplier applied to every lookup
}

// NewEnvironmentMap wraps already loaded image data
func NewEnvironmentMap(image *loaders.ImageData, exposure float64) (*EnvironmentMap, error) {
	if image == nil || image.Width == 0 || image.Height == 0 || len(image.Pixels) != image.Width*image.Height {
		return nil, fmt.Errorf("environment map: empty or inconsistent image data")
	}
	return &EnvironmentMap{Image: image, Exposure: exposure}, nil
}

// LoadEnvironmentMap loads an equirectangular image from disk
func LoadEnvironmentMap(filename string, exposure float64) (*EnvironmentMap, error) {
	image, err := loaders.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("environment map %s: %w", filename, err)
	}
	return NewEnvironmentMap(image, exposure)
}

// Color returns the nearest texel in the given direction
func (e *EnvironmentMap) Color(direction core.Vec3) core.Vec3 {
	d := direction.Normalize()
	if d.IsZero() {
		return core.Vec3{}
	}

	u := 0.5 + math.Atan2(d.X, -d.Z)/(2*math.Pi)
	v := math.Acos(max(-1, min(1, d.Y))) / math.Pi

	x := int(u * float64(e.Image.Width))
	y := int(v * float64(e.Image.Height))
	x = ((x % e.Image.Width) + e.Image.Width) % e.Image.Width
	y = max(0, min(e.Image.Height-1, y))

	return e.Image.Pixels[y*e.Image.Width+x].Multiply(e.Exposure)
}
