package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Olluo/renderman-bottle/config"
	"github.com/Olluo/renderman-bottle/renderer"
	"github.com/Olluo/renderman-bottle/ri"
	"github.com/Olluo/renderman-bottle/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame or write it to a RIB file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	goCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env, err := config.ParseEnv()
	if err != nil {
		return err
	}

	layout, err := layoutFromContext(goCtx, ctx)
	if err != nil {
		return err
	}

	if err = prepareShaders(goCtx, env, layout, !ctx.Bool("no-shaders")); err != nil {
		return err
	}

	opts := renderer.DefaultOptions()
	opts.Settings = settingsFromContext(ctx)
	opts.Settings.ShaderPath = env.ShaderDir
	opts.RIBFile = ctx.String("out")

	var r renderer.Renderer
	if ctx.Bool("rib") {
		r, err = renderer.NewRIBWriter(opts)
	} else {
		if opts.Command, err = env.Tool(env.Prman); err != nil {
			return err
		}
		r, err = renderer.NewPrman(opts)
	}
	if err != nil {
		return err
	}

	stats, err := r.Render(goCtx, layout)
	if err != nil {
		return err
	}

	displayFrameStats(stats)
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Primitives", "Lights", "Shading nodes", "Requests", "Build time", "Total time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Primitives),
		fmt.Sprintf("%d", stats.Lights),
		fmt.Sprintf("%d", stats.ShadingNodes),
		fmt.Sprintf("%d", totalCalls(stats)),
		stats.BuildTime.String(),
		stats.RenderTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

func totalCalls(stats renderer.FrameStats) int {
	total := 0
	for _, n := range stats.Calls {
		total += n
	}
	return total
}

// Tabulate the objects in the layout and the requests they produce.
func sceneStatsTable(layout scene.Layout, stats renderer.FrameStats) string {
	var buf bytes.Buffer

	objects := tablewriter.NewWriter(&buf)
	objects.SetAutoFormatHeaders(false)
	objects.SetAutoWrapText(false)
	objects.SetHeader([]string{"Object", "Size", "Position", "Rotation"})
	for i, b := range layout.Bottles {
		objects.Append([]string{
			fmt.Sprintf("bottle %d", i),
			fmt.Sprintf("h %g r %g", b.Height, b.Radius),
			fmt.Sprintf("%v", b.Translate),
			fmt.Sprintf("%v", b.Rotate),
		})
	}
	t := layout.Table
	objects.Append([]string{
		"table",
		fmt.Sprintf("%g x %g x %g", t.Width, t.Height, t.Depth),
		fmt.Sprintf("%v", t.Translate),
		fmt.Sprintf("%v", t.Rotate),
	})
	objects.Render()

	requests := tablewriter.NewWriter(&buf)
	requests.SetAutoFormatHeaders(false)
	requests.SetHeader([]string{"Request", "Count"})
	calls := stats.Calls
	for _, name := range (ri.Stats{Calls: calls}).Names() {
		requests.Append([]string{name, fmt.Sprintf("%d", calls[name])})
	}
	requests.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", totalCalls(stats))})
	requests.Render()

	return buf.String()
}
