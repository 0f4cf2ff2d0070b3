package renderer

import (
	"io"

	"github.com/Olluo/renderman-bottle/scene"
)

type Options struct {
	// Frame settings.
	Settings scene.Settings

	// Output path used when writing RIB files.
	RIBFile string

	// The renderer executable and its arguments. The RIB stream is
	// supplied on its standard input.
	Command []string

	// Receives the renderer's standard output. Defaults to os.Stdout.
	Stdout io.Writer
}

// DefaultOptions returns options matching the default frame settings.
func DefaultOptions() Options {
	return Options{
		Settings: scene.DefaultSettings(),
		RIBFile:  "Bottle.rib",
		Command:  []string{"prman"},
	}
}
