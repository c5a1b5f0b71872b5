package renderer

import "errors"

var (
	ErrInvalidSize     = errors.New("renderer: image width and height must be positive")
	ErrInvalidBounces  = errors.New("renderer: bounces must not be negative")
	ErrInvalidSamples  = errors.New("renderer: jitter sample count must be positive")
	ErrInvalidTileSize = errors.New("renderer: tile size must be positive")
	ErrSceneNotDefined = errors.New("renderer: no scene defined")
	ErrInterrupted     = errors.New("renderer: interrupted while rendering")
)
