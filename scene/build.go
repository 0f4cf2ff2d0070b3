package scene

import (
	"path/filepath"

	"github.com/Olluo/renderman-bottle/log"
	"github.com/Olluo/renderman-bottle/ri"
)

var logger = log.New("scene")

// Build emits a complete frame for layout against r. The frame is opened with
// Begin(name) and closed with End, whose error is returned.
func Build(r ri.Interface, name string, layout Layout, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := layout.Validate(); err != nil {
		return err
	}
	if len(layout.Bottles) == 0 {
		logger.Warning("layout contains no bottles")
	}

	if settings.Indented {
		r.Option("rib", ri.Params{ri.String("asciistyle", "indented")})
	}
	r.Begin(name)

	emitOptions(r, layout.Camera, settings)

	r.ArchiveRecord(ri.Comment, "Translate world in Z so we can see it")
	r.Translate(layout.Camera.Translate[0], layout.Camera.Translate[1], layout.Camera.Translate[2])

	r.WorldBegin()
	r.TransformBegin()

	if err := AddHdrLight(r, layout.Light); err != nil {
		return err
	}

	bottleMaker := NewBottleMaker(r)
	for _, b := range layout.Bottles {
		if err := bottleMaker.Draw(b); err != nil {
			return err
		}
	}

	if err := NewTableMaker(r).Draw(layout.Table); err != nil {
		return err
	}

	r.TransformEnd()
	r.WorldEnd()

	logger.Infof("emitted frame with %d bottles", len(layout.Bottles))
	return r.End()
}

func emitOptions(r ri.Interface, cam Camera, s Settings) {
	if s.ShaderPath != "" {
		// "@" keeps the renderer's default locations.
		r.Option("searchpath", ri.Params{ri.String("shader", filepath.ToSlash(s.ShaderPath)+":@")})
	}
	r.Display(s.Display, s.Driver, s.Channels, nil)

	r.Format(s.Width, s.Height, s.PixelAspect)
	r.Projection(ri.Perspective, ri.Params{{Decl: ri.FOV, Value: []float32{cam.FOV}}})

	r.Hider("raytrace", ri.Params{
		ri.Int("incremental", 1),
		ri.Int("maxsamples", s.Samples),
	})
	r.PixelVariance(s.PixelVariance)
	r.Integrator(s.Integrator, "integrator", nil)
}
