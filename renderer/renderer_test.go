package renderer

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Olluo/renderman-bottle/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	stats, err := Inspect(scene.DefaultLayout(2.5, 0.4), scene.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 30, stats.Primitives)
	assert.Equal(t, 1, stats.Lights)
	assert.Equal(t, stats.Calls["Bxdf"]+stats.Calls["Pattern"]+stats.Calls["Displace"], stats.ShadingNodes)

	settings := scene.DefaultSettings()
	settings.Width = 0
	_, err = Inspect(scene.DefaultLayout(2.5, 0.4), settings)
	assert.ErrorIs(t, err, scene.ErrInvalidSettings)
}

func TestRIBWriter(t *testing.T) {
	opts := DefaultOptions()
	opts.RIBFile = filepath.Join(t.TempDir(), "Bottle.rib")

	r, err := NewRIBWriter(opts)
	require.NoError(t, err)

	stats, err := r.Render(context.Background(), scene.DefaultLayout(2.5, 0.4))
	require.NoError(t, err)
	assert.Equal(t, 30, stats.Primitives)

	data, err := os.ReadFile(opts.RIBFile)
	require.NoError(t, err)
	rib := string(data)
	assert.True(t, strings.HasPrefix(rib, "##RenderMan RIB\n"))
	assert.Contains(t, rib, `Option "searchpath" "string shader" ["shaders:@"]`)
	assert.Less(t, strings.Index(rib, `Option "searchpath"`), strings.Index(rib, "Display "))
	assert.Contains(t, rib, `Display "Bottle.exr" "it" "rgba"`)
	assert.Equal(t, 8, strings.Count(rib, "Cylinder "))
	assert.Equal(t, 6, strings.Count(rib, `Patch "bilinear"`))

	_, err = NewRIBWriter(Options{})
	assert.ErrorIs(t, err, ErrNoRIBFile)
}

func TestWriteRIB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.rib")
	stats, err := WriteRIB(path, scene.DefaultLayout(2.5, 0.4), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 30, stats.Primitives)
	assert.FileExists(t, path)

	_, err = Render(context.Background(), scene.DefaultLayout(2.5, 0.4), Options{})
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestRIBWriterCreateFailure(t *testing.T) {
	opts := DefaultOptions()
	opts.RIBFile = filepath.Join(t.TempDir(), "missing-dir", "Bottle.rib")

	r, err := NewRIBWriter(opts)
	require.NoError(t, err)
	_, err = r.Render(context.Background(), scene.DefaultLayout(2.5, 0.4))
	assert.Error(t, err)
}

func requireShell(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestPrmanStreamsScene(t *testing.T) {
	requireShell(t)
	out := filepath.Join(t.TempDir(), "stream.rib")

	opts := DefaultOptions()
	opts.Command = []string{"sh", "-c", "cat > " + out + " && echo rendered"}
	var stdout bytes.Buffer
	opts.Stdout = &stdout

	r, err := NewPrman(opts)
	require.NoError(t, err)
	stats, err := r.Render(context.Background(), scene.DefaultLayout(2.5, 0.4))
	require.NoError(t, err)
	assert.Equal(t, 30, stats.Primitives)
	assert.Equal(t, "rendered\n", stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# __render\n")
	assert.True(t, strings.HasSuffix(string(data), "WorldEnd\n"))
}

func TestPrmanFailure(t *testing.T) {
	requireShell(t)

	opts := DefaultOptions()
	opts.Command = []string{"sh", "-c", "cat > /dev/null; echo 'R56001 license error' >&2; exit 3"}
	opts.Stdout = &bytes.Buffer{}

	r, err := NewPrman(opts)
	require.NoError(t, err)
	_, err = r.Render(context.Background(), scene.DefaultLayout(2.5, 0.4))
	assert.ErrorIs(t, err, ErrRenderFailed)
	assert.Contains(t, err.Error(), "license error")
}

func TestPrmanMissingCommand(t *testing.T) {
	_, err := NewPrman(Options{})
	assert.ErrorIs(t, err, ErrNoCommand)

	opts := DefaultOptions()
	opts.Command = []string{filepath.Join(t.TempDir(), "no-such-prman")}
	r, err := NewPrman(opts)
	require.NoError(t, err)
	_, err = r.Render(context.Background(), scene.DefaultLayout(2.5, 0.4))
	assert.ErrorIs(t, err, ErrRenderFailed)
}
