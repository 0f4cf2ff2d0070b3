package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Olluo/renderman-bottle/renderer"
	"github.com/Olluo/renderman-bottle/scene"
	"github.com/urfave/cli"
)

const (
	defaultBottleHeight = 2.5
	defaultBottleRadius = 0.4
)

// Parse the optional [height] [radius] arguments.
func bottleSize(ctx *cli.Context) (height, radius float32, err error) {
	height, radius = defaultBottleHeight, defaultBottleRadius
	if ctx.NArg() > 2 {
		return 0, 0, fmt.Errorf("expected at most 2 arguments; got %d", ctx.NArg())
	}

	parse := func(index int, name string, dst *float32) error {
		if ctx.NArg() <= index {
			return nil
		}
		v, err := strconv.ParseFloat(ctx.Args().Get(index), 32)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %v", name, ctx.Args().Get(index), err)
		}
		*dst = float32(v)
		return nil
	}
	if err = parse(0, "height", &height); err != nil {
		return 0, 0, err
	}
	if err = parse(1, "radius", &radius); err != nil {
		return 0, 0, err
	}
	return height, radius, nil
}

// Build the layout from the command arguments and an optional layout file.
func layoutFromContext(goCtx context.Context, ctx *cli.Context) (scene.Layout, error) {
	height, radius, err := bottleSize(ctx)
	if err != nil {
		return scene.Layout{}, err
	}

	layout := scene.DefaultLayout(height, radius)
	if path := ctx.String("layout"); path != "" {
		layout, err = scene.LoadLayout(goCtx, path, layout)
		if err != nil {
			return scene.Layout{}, err
		}
	}
	return layout, nil
}

// Build frame settings from the command flags.
func settingsFromContext(ctx *cli.Context) scene.Settings {
	settings := scene.DefaultSettings()
	settings.Width = ctx.Int("width")
	settings.Height = ctx.Int("height")
	settings.Samples = ctx.Int("samples")
	if name := ctx.String("display"); name != "" {
		settings.Display = name
	}
	if ctx.Bool("export") {
		settings.Driver = "openexr"
	}
	return settings
}

// Display scene statistics without rendering.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	layout, err := layoutFromContext(context.Background(), ctx)
	if err != nil {
		return err
	}

	stats, err := renderer.Inspect(layout, settingsFromContext(ctx))
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sceneStatsTable(layout, stats))
	return nil
}

// Print the layout in TOML format so it can be edited and passed back with
// --layout.
func DumpLayout(ctx *cli.Context) error {
	setupLogging(ctx)

	layout, err := layoutFromContext(context.Background(), ctx)
	if err != nil {
		return err
	}
	return scene.EncodeLayout(os.Stdout, layout)
}
