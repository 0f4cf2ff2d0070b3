package main

import (
	"fmt"
	"os"

	"github.com/Olluo/renderman-bottle/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	layoutFlag := cli.StringFlag{
		Name:  "layout",
		Usage: "load camera, light and object placement from a TOML file",
	}
	frameFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 1920,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 1080,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "samples, s",
			Value: 512,
			Usage: "maximum samples per pixel",
		},
		cli.StringFlag{
			Name:  "display",
			Usage: "display name for the rendered frame",
		},
		cli.BoolFlag{
			Name:  "export, e",
			Usage: "write an OpenEXR file instead of opening the frame in it",
		},
		layoutFlag,
	}

	app := cli.NewApp()
	app.Name = "bottle"
	app.Usage = "model and render a water bottle with RenderMan"
	app.Version = "0.0.1"
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
			Usage: "render the bottle scene",
			Description: `
Build the scene and stream it to prman. The optional arguments set the bottle
height and radius; they default to 2.5 and 0.4.

Shaders in the shader directory are compiled first unless --no-shaders is
given. Use --rib to write the scene description to a file instead.`,
			ArgsUsage: "[height] [radius]",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "rib, r",
					Usage: "write the scene to a RIB file instead of rendering it",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "Bottle.rib",
					Usage: "RIB file written by --rib",
				},
				cli.BoolFlag{
					Name:  "no-shaders",
					Usage: "skip shader compilation",
				},
			}, frameFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:      "compile-shaders",
			Usage:     "compile the OSL shaders",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Usage: "shader source directory; defaults to $BOTTLE_SHADER_DIR",
				},
				cli.BoolFlag{
					Name:  "watch, w",
					Usage: "keep recompiling shaders as they change",
				},
			},
			Action: cmd.CompileShaders,
		},
		{
			Name:      "info",
			Usage:     "display scene statistics without rendering",
			ArgsUsage: "[height] [radius]",
			Flags:     frameFlags,
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:      "layout",
			Usage:     "print the scene layout as TOML",
			ArgsUsage: "[height] [radius]",
			Flags:     []cli.Flag{layoutFlag},
			Action:    cmd.DumpLayout,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
