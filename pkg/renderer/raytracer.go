package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer renders a scene into color, normal and depth buffers
type Raytracer struct {
	scene  *scene.Scene
	config RenderConfig
	logger log.Logger
}

// NewRaytracer validates the configuration and scene and creates a raytracer
func NewRaytracer(s *scene.Scene, config RenderConfig) (*Raytracer, error) {
	if s == nil {
		return nil, ErrSceneNotDefined
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:  s,
		config: config,
		logger: log.New("renderer"),
	}, nil
}

// Config returns the render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces every pixel using a pool of workers. Output is identical for
// any worker count because each tile samples from its own seeded sequence.
// If ctx is cancelled the remaining tiles are skipped and an error wrapping
// both ErrInterrupted and ctx.Err() is returned.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	start := time.Now()

	frame := NewFrame(rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize, rt.config.Seed)
	pool := NewWorkerPool(rt.scene, rt.config, len(tiles))

	rt.logger.Infof("rendering %q at %dx%d: %d tiles of %dpx, %d workers, %d samples/pixel, %d bounces, shadows=%t",
		rt.scene.Name, rt.config.Width, rt.config.Height, len(tiles), rt.config.TileSize,
		pool.GetNumWorkers(), rt.config.SamplesPerPixel(), rt.config.Bounces, rt.config.Shadows)

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: i,
			Frame:  frame,
		})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
		rt.logger.Debugf("tile %d done (%d/%d)", result.TaskID, stats.Tiles, len(tiles))
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if renderErr != nil {
		rt.logger.Warningf("render interrupted after %d/%d tiles: %v", stats.Tiles, len(tiles), renderErr)
		return nil, stats, fmt.Errorf("%w: %w", ErrInterrupted, renderErr)
	}

	rt.logger.Noticef("rendered %dx%d in %s (%d rays)", rt.config.Width, rt.config.Height, stats.Duration, stats.TotalRays())
	return frame, stats, nil
}
