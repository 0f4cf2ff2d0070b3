package shader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invocation struct {
	name string
	args []string
}

// A fake compiler that records invocations and writes the requested output.
func fakeRunner(calls *[]invocation, fail string) Runner {
	return func(_ context.Context, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, invocation{name, args})
		src := args[len(args)-1]
		if fail != "" && strings.HasSuffix(src, fail) {
			return []byte("error: syntax error\n"), errors.New("exit status 1")
		}
		for i, arg := range args {
			if arg == "-o" {
				return nil, os.WriteFile(args[i+1], []byte("oso"), 0o644)
			}
		}
		return nil, nil
	}
}

func writeFile(t *testing.T, path string, modTime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("shader"), 0o644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}

func TestNewCompilerRequiresCommand(t *testing.T) {
	_, err := NewCompiler(t.TempDir(), nil, nil)
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestOutput(t *testing.T) {
	assert.Equal(t, filepath.Join("shaders", "knurl.oso"), Output(filepath.Join("shaders", "knurl.osl")))
}

func TestStale(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	c, err := NewCompiler(dir, []string{"oslc"}, nil)
	require.NoError(t, err)

	src := filepath.Join(dir, "knurl.osl")
	writeFile(t, src, now)

	stale, err := c.Stale(src)
	require.NoError(t, err)
	assert.True(t, stale, "missing output should be stale")

	writeFile(t, Output(src), now.Add(-time.Hour))
	stale, err = c.Stale(src)
	require.NoError(t, err)
	assert.True(t, stale, "older output should be stale")

	writeFile(t, Output(src), now.Add(time.Hour))
	stale, err = c.Stale(src)
	require.NoError(t, err)
	assert.False(t, stale, "newer output should be up to date")

	_, err = c.Stale(filepath.Join(dir, "missing.osl"))
	assert.Error(t, err)
}

func TestCompileAll(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	writeFile(t, filepath.Join(dir, "knurl.osl"), now)
	writeFile(t, filepath.Join(dir, "scratches.osl"), now)
	writeFile(t, filepath.Join(dir, "scratches.oso"), now.Add(time.Hour))
	writeFile(t, filepath.Join(dir, "woodGrain.osl"), now)
	writeFile(t, filepath.Join(dir, "woodGrain.oso"), now.Add(-time.Hour))
	writeFile(t, filepath.Join(dir, "notes.txt"), now)

	var calls []invocation
	c, err := NewCompiler(dir, []string{"oslc", "-q"}, fakeRunner(&calls, ""))
	require.NoError(t, err)

	compiled, err := c.CompileAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, compiled)
	require.Len(t, calls, 2)
	assert.Equal(t, "oslc", calls[0].name)
	assert.Equal(t, []string{"-q", "-o", filepath.Join(dir, "knurl.oso"), filepath.Join(dir, "knurl.osl")}, calls[0].args)
	assert.Equal(t, filepath.Join(dir, "woodGrain.osl"), calls[1].args[3])

	// Everything is now up to date.
	calls = nil
	compiled, err = c.CompileAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, compiled)
	assert.Empty(t, calls)
}

func TestCompileFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.osl"), time.Now())
	writeFile(t, filepath.Join(dir, "b.osl"), time.Now())
	writeFile(t, filepath.Join(dir, "c.osl"), time.Now())

	var calls []invocation
	c, err := NewCompiler(dir, []string{"oslc"}, fakeRunner(&calls, "b.osl"))
	require.NoError(t, err)

	compiled, err := c.CompileAll(context.Background())
	assert.ErrorIs(t, err, ErrCompileFailed)
	assert.Contains(t, err.Error(), "syntax error")
	assert.Equal(t, 1, compiled)
	assert.Len(t, calls, 2)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCompiler(dir, []string{"oslc"}, nil)
	require.NoError(t, err)
	writeFile(t, filepath.Join(dir, "knurl.oso"), time.Now())

	assert.NoError(t, c.Check([]string{"PxrSurface", "knurl", "PxrBlend"}))

	err = c.Check([]string{"knurl", "scratches", "PxrFractal", "woodGrain"})
	assert.ErrorIs(t, err, ErrNotCompiled)
	assert.Contains(t, err.Error(), "scratches, woodGrain")
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	var calls []invocation
	c, err := NewCompiler(dir, []string{"oslc"}, fakeRunner(&calls, ""))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	compiledCh := make(chan string, 16)
	doneCh := make(chan error, 1)
	go func() {
		doneCh <- c.Watch(ctx, func(src string, err error) {
			if err != nil {
				return
			}
			select {
			case compiledCh <- src:
			default:
			}
		})
	}()

	src := filepath.Join(dir, "knurl.osl")
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	// Keep touching the source until the watcher is up and reacts.
wait:
	for {
		select {
		case got := <-compiledCh:
			assert.Equal(t, src, got)
			break wait
		case <-ticker.C:
			require.NoError(t, os.WriteFile(src, []byte("shader"), 0o644))
		case <-deadline:
			t.Fatal("timed out waiting for the watcher to compile the shader")
		}
	}

	cancel()
	select {
	case err := <-doneCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}
