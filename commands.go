package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("whitted")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// renderScene implements the render command
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	config, err := renderConfigFromFlags(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	s, err := createScene(ctx.String("scene"), config.Width, config.Height)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	if env := ctx.String("env"); env != "" {
		envMap, err := scene.LoadEnvironmentMap(env, ctx.Float64("env-exposure"))
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		s.Background = envMap
	}

	rt, err := renderer.NewRaytracer(s, config)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	// Ctrl+C stops the render between tiles
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := rt.Render(renderCtx)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	outputs := []struct {
		path   string
		buffer *renderer.FrameBuffer
	}{
		{ctx.String("output"), frame.Color},
		{ctx.String("normals"), frame.Normals},
		{ctx.String("depth"), frame.Depth},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := loaders.SaveImage(out.path, out.buffer.ToImage()); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		logger.Noticef("saved %s", out.path)
	}

	displayRenderStats(stats)
	return nil
}

// renderConfigFromFlags maps command line flags onto a validated render configuration
func renderConfigFromFlags(ctx *cli.Context) (renderer.RenderConfig, error) {
	config := renderer.DefaultRenderConfig()
	config.Width = ctx.Int("width")
	config.Height = ctx.Int("height")
	config.Bounces = ctx.Int("bounces")
	config.Shadows = ctx.BoolT("shadows")
	config.Jitter = ctx.Bool("jitter")
	config.Filter = ctx.Bool("filter")
	config.Samples = ctx.Int("samples")
	config.DepthMin = ctx.Float64("depth-min")
	config.DepthMax = ctx.Float64("depth-max")
	config.NumWorkers = ctx.Int("workers")
	config.TileSize = ctx.Int("tile-size")
	config.Seed = ctx.Int64("seed")

	if size := ctx.String("size"); size != "" {
		width, height, err := parseSize(size)
		if err != nil {
			return config, err
		}
		config.Width, config.Height = width, height
	}

	return config, config.Validate()
}

// parseSize parses a WxH size string such as "640x480"
func parseSize(size string) (int, int, error) {
	parts := strings.Split(strings.ToLower(size), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q: expected WxH", size)
	}

	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", size, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", size, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", size)
	}
	return width, height, nil
}

// createScene builds a built-in scene whose camera matches the image aspect ratio
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}

	aspect := float64(width) / float64(height)
	return scene.Create(sceneType, geometry.CameraConfig{AspectRatio: aspect})
}

// listScenes implements the scenes command
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	fmt.Print(sceneTable())
	return nil
}

func sceneTable() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Group", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.DisplayName, info.Group, info.Description})
	}
	table.Render()
	return buf.String()
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	renderer.WriteStatsTable(&buf, stats)
	logger.Noticef("render statistics\n%s", buf.String())
}
