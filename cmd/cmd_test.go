package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Olluo/renderman-bottle/config"
	"github.com/Olluo/renderman-bottle/renderer"
	"github.com/Olluo/renderman-bottle/scene"
	"github.com/Olluo/renderman-bottle/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Int("width", 1920, "")
	set.Int("height", 1080, "")
	set.Int("samples", 512, "")
	set.String("display", "", "")
	set.Bool("export", false, "")
	set.String("layout", "", "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestBottleSize(t *testing.T) {
	h, r, err := bottleSize(newContext(t))
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), h)
	assert.Equal(t, float32(0.4), r)

	h, r, err = bottleSize(newContext(t, "3"))
	require.NoError(t, err)
	assert.Equal(t, float32(3), h)
	assert.Equal(t, float32(0.4), r)

	h, r, err = bottleSize(newContext(t, "3", "0.5"))
	require.NoError(t, err)
	assert.Equal(t, float32(3), h)
	assert.Equal(t, float32(0.5), r)

	_, _, err = bottleSize(newContext(t, "tall"))
	assert.ErrorContains(t, err, `invalid height "tall"`)

	_, _, err = bottleSize(newContext(t, "1", "2", "3"))
	assert.Error(t, err)
}

func TestSettingsFromContext(t *testing.T) {
	settings := settingsFromContext(newContext(t, "-width", "640", "-height", "480", "-samples", "64", "-export"))
	assert.Equal(t, 640, settings.Width)
	assert.Equal(t, 480, settings.Height)
	assert.Equal(t, 64, settings.Samples)
	assert.Equal(t, "openexr", settings.Driver)
	assert.Equal(t, scene.DefaultSettings().Display, settings.Display)

	settings = settingsFromContext(newContext(t, "-display", "Other.exr"))
	assert.Equal(t, "Other.exr", settings.Display)
	assert.Equal(t, scene.DefaultSettings().Driver, settings.Driver)
}

func TestLayoutFromContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte("[camera]\nfov = 45.0\n"), 0o644))

	layout, err := layoutFromContext(context.Background(), newContext(t, "-layout", path, "3"))
	require.NoError(t, err)
	assert.Equal(t, float32(45), layout.Camera.FOV)
	require.Len(t, layout.Bottles, 2)
	assert.Equal(t, float32(3), layout.Bottles[1].Height)

	_, err = layoutFromContext(context.Background(), newContext(t, "-layout", filepath.Join(t.TempDir(), "missing.toml")))
	assert.Error(t, err)
}

func TestPrepareShaders(t *testing.T) {
	dir := t.TempDir()
	env := config.Env{Oslc: "oslc", ShaderDir: dir}
	layout := scene.DefaultLayout(2.5, 0.4)

	assert.ErrorIs(t, prepareShaders(context.Background(), env, layout, true), shader.ErrNotCompiled)
	assert.NoError(t, prepareShaders(context.Background(), env, layout, false))

	for _, name := range layout.Shaders() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+shader.CompiledExt), []byte("oso"), 0o644))
	}
	assert.NoError(t, prepareShaders(context.Background(), env, layout, true))
}

func TestSceneStatsTable(t *testing.T) {
	layout := scene.DefaultLayout(2.5, 0.4)
	stats, err := renderer.Inspect(layout, scene.DefaultSettings())
	require.NoError(t, err)

	out := sceneStatsTable(layout, stats)
	assert.Contains(t, out, "bottle 0")
	assert.Contains(t, out, "table")
	assert.Contains(t, out, "Cylinder")
	assert.Contains(t, out, "TOTAL")
}
