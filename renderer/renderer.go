package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Olluo/renderman-bottle/log"
	"github.com/Olluo/renderman-bottle/ri"
	"github.com/Olluo/renderman-bottle/scene"
)

// The frame name used when streaming straight to the renderer.
const renderFrameName = "__render"

type Renderer interface {
	// Render a frame of the layout.
	Render(ctx context.Context, layout scene.Layout) (FrameStats, error)
}

// Inspect builds the frame against a recorder. It validates the layout and
// settings and collects statistics without producing any output.
func Inspect(layout scene.Layout, settings scene.Settings) (FrameStats, error) {
	start := time.Now()
	rec := ri.NewRecorder()
	if err := scene.Build(rec, "", layout, settings); err != nil {
		return FrameStats{}, err
	}
	stats := newFrameStats(rec.Stats())
	stats.BuildTime = time.Since(start)
	return stats, nil
}

// WriteRIB writes a frame of the layout to path.
func WriteRIB(path string, layout scene.Layout, opts Options) (FrameStats, error) {
	opts.RIBFile = path
	w, err := NewRIBWriter(opts)
	if err != nil {
		return FrameStats{}, err
	}
	return w.Render(context.Background(), layout)
}

// Render a frame of the layout with the configured render command.
func Render(ctx context.Context, layout scene.Layout, opts Options) (FrameStats, error) {
	p, err := NewPrman(opts)
	if err != nil {
		return FrameStats{}, err
	}
	return p.Render(ctx, layout)
}

type ribWriter struct {
	opts   Options
	logger log.Logger
}

// NewRIBWriter returns a renderer that writes the scene description to
// opts.RIBFile instead of rendering it.
func NewRIBWriter(opts Options) (Renderer, error) {
	if opts.RIBFile == "" {
		return nil, ErrNoRIBFile
	}
	return &ribWriter{
		opts:   opts,
		logger: log.New("rib writer"),
	}, nil
}

func (w *ribWriter) Render(_ context.Context, layout scene.Layout) (FrameStats, error) {
	start := time.Now()
	stats, err := Inspect(layout, w.opts.Settings)
	if err != nil {
		return stats, err
	}

	f, err := os.Create(w.opts.RIBFile)
	if err != nil {
		return stats, err
	}

	err = scene.Build(ri.NewStream(f), w.opts.RIBFile, layout, w.opts.Settings)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(w.opts.RIBFile)
		return stats, err
	}

	stats.RenderTime = time.Since(start)
	w.logger.Noticef("wrote %s in %s", w.opts.RIBFile, stats.RenderTime)
	return stats, nil
}

type prman struct {
	opts   Options
	logger log.Logger
}

// NewPrman returns a renderer that streams the scene description into the
// standard input of the configured render command.
func NewPrman(opts Options) (Renderer, error) {
	if len(opts.Command) == 0 || opts.Command[0] == "" {
		return nil, ErrNoCommand
	}
	return &prman{
		opts:   opts,
		logger: log.New("prman"),
	}, nil
}

func (p *prman) Render(ctx context.Context, layout scene.Layout) (FrameStats, error) {
	start := time.Now()
	stats, err := Inspect(layout, p.opts.Settings)
	if err != nil {
		return stats, err
	}

	pr, pw := io.Pipe()
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.opts.Command[0], p.opts.Command[1:]...)
	cmd.Stdin = pr
	cmd.Stderr = &stderr
	cmd.Stdout = p.opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}

	p.logger.Infof("starting %s", strings.Join(p.opts.Command, " "))
	if err = cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return stats, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	buildErr := make(chan error, 1)
	go func() {
		err := scene.Build(ri.NewStream(pw), renderFrameName, layout, p.opts.Settings)
		pw.CloseWithError(err)
		buildErr <- err
	}()

	waitErr := cmd.Wait()
	// Unblock the scene writer if the renderer exited without consuming
	// the whole stream.
	pr.Close()
	if err = <-buildErr; err != nil && !errors.Is(err, io.ErrClosedPipe) {
		return stats, err
	}

	if waitErr != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = waitErr.Error()
		}
		return stats, fmt.Errorf("%w: %s", ErrRenderFailed, msg)
	}
	if errors.Is(err, io.ErrClosedPipe) {
		return stats, fmt.Errorf("%w: renderer exited before reading the whole scene", ErrRenderFailed)
	}

	stats.RenderTime = time.Since(start)
	p.logger.Noticef("rendered frame in %s", stats.RenderTime)
	return stats, nil
}
