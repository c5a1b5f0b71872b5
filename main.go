package main

import (
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaults := renderer.DefaultRenderConfig()

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes with recursive Whitted ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Trace a built-in scene and write the color image. Normal and depth buffers
are written only when their output paths are given. The image format follows
the file extension: .png, .tif/.tiff or .bmp.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene id (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "image width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: defaults.Height,
					Usage: "image height",
				},
				cli.StringFlag{
					Name:  "size",
					Usage: "image size as WxH, overrides --width and --height",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: defaults.Bounces,
					Usage: "maximum number of reflection bounces",
				},
				cli.BoolTFlag{
					Name:  "shadows",
					Usage: "cast shadow rays (use --shadows=false to disable)",
				},
				cli.BoolFlag{
					Name:  "jitter",
					Usage: "average several randomly offset rays per pixel",
				},
				cli.BoolFlag{
					Name:  "filter",
					Usage: "weighted 3x3 sub-pixel filter",
				},
				cli.IntFlag{
					Name:  "samples",
					Value: defaults.Samples,
					Usage: "rays per pixel when jittering without the filter",
				},
				cli.Float64Flag{
					Name:  "depth-min",
					Value: defaults.DepthMin,
					Usage: "distance mapped to black in the depth image",
				},
				cli.Float64Flag{
					Name:  "depth-max",
					Value: defaults.DepthMax,
					Usage: "distance mapped to white in the depth image",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "render.png",
					Usage: "color image filename",
				},
				cli.StringFlag{
					Name:  "normals",
					Usage: "normal image filename",
				},
				cli.StringFlag{
					Name:  "depth",
					Usage: "depth image filename",
				},
				cli.StringFlag{
					Name:  "env",
					Usage: "equirectangular environment map used as background",
				},
				cli.Float64Flag{
					Name:  "env-exposure",
					Value: 1.0,
					Usage: "multiplier applied to the environment map",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: defaults.NumWorkers,
					Usage: "parallel workers (0 = one per CPU)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: defaults.TileSize,
					Usage: "square tile size in pixels",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "base seed for jittered sampling",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: listScenes,
		},
	}

	return app
}
