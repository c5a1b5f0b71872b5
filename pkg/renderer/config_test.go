package renderer

import (
	"errors"
	"testing"
)

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *RenderConfig)
		wantErr error
	}{
		{"Defaults", func(c *RenderConfig) {}, nil},
		{"Zero width", func(c *RenderConfig) { c.Width = 0 }, ErrInvalidSize},
		{"Negative height", func(c *RenderConfig) { c.Height = -4 }, ErrInvalidSize},
		{"Negative bounces", func(c *RenderConfig) { c.Bounces = -1 }, ErrInvalidBounces},
		{"Jitter without samples", func(c *RenderConfig) { c.Jitter = true; c.Samples = 0 }, ErrInvalidSamples},
		{"Samples ignored without jitter", func(c *RenderConfig) { c.Samples = 0 }, nil},
		{"Zero tile size", func(c *RenderConfig) { c.TileSize = 0 }, ErrInvalidTileSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultRenderConfig()
			tt.mutate(&config)
			err := config.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRenderConfig_SamplesPerPixel(t *testing.T) {
	config := DefaultRenderConfig()
	if config.SamplesPerPixel() != 1 {
		t.Errorf("Plain sampling should trace 1 ray, got %d", config.SamplesPerPixel())
	}
	config.Jitter = true
	if config.SamplesPerPixel() != 16 {
		t.Errorf("Jitter should trace 16 rays, got %d", config.SamplesPerPixel())
	}
	config.Filter = true
	if config.SamplesPerPixel() != 9 {
		t.Errorf("Filter should trace 9 rays, got %d", config.SamplesPerPixel())
	}
}
