package renderer

import (
	"fmt"
	"runtime"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width      int     // Image width in pixels
	Height     int     // Image height in pixels
	Bounces    int     // Maximum number of reflection bounces
	Shadows    bool    // Cast shadow rays
	Jitter     bool    // Average several randomly offset rays per pixel
	Filter     bool    // Weighted 3x3 sub-pixel grid per pixel
	Samples    int     // Rays per pixel when jittering without the filter
	DepthMin   float64 // Distance mapped to 0 in the depth buffer
	DepthMax   float64 // Distance mapped to 1 in the depth buffer
	TileSize   int     // Size of each square tile in pixels
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
	Seed       int64   // Base seed for per-tile samplers
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      800,
		Height:     800,
		Bounces:    4,
		Shadows:    true,
		Jitter:     false,
		Filter:     false,
		Samples:    16,
		DepthMin:   8,
		DepthMax:   18,
		TileSize:   32,
		NumWorkers: 0,
		Seed:       42,
	}
}

// Validate returns the first invalid setting, wrapped around one of the package sentinels
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Bounces < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBounces, c.Bounces)
	}
	if c.Jitter && c.Samples <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.Samples)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTileSize, c.TileSize)
	}
	return nil
}

// HasDepthRange reports whether depth values can be normalized
func (c RenderConfig) HasDepthRange() bool {
	return c.DepthMax > c.DepthMin
}

// SamplesPerPixel returns the number of camera rays traced for every pixel
func (c RenderConfig) SamplesPerPixel() int {
	switch {
	case c.Filter:
		return len(filterOffsets) * len(filterOffsets)
	case c.Jitter:
		return c.Samples
	default:
		return 1
	}
}

// workerCount resolves NumWorkers, defaulting to one worker per CPU
func (c RenderConfig) workerCount() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}
