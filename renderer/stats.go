package renderer

import (
	"time"

	"github.com/Olluo/renderman-bottle/ri"
)

type FrameStats struct {
	// Number of issued requests by name.
	Calls map[string]int

	Primitives   int
	Lights       int
	ShadingNodes int

	// Time spent generating the scene description.
	BuildTime time.Duration

	// Total time including rendering or writing the output.
	RenderTime time.Duration
}

func newFrameStats(s ri.Stats) FrameStats {
	return FrameStats{
		Calls:        s.Calls,
		Primitives:   s.Primitives(),
		Lights:       s.Lights(),
		ShadingNodes: s.ShadingNodes(),
	}
}
