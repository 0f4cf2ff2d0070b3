package renderer

import "errors"

var (
	ErrNoCommand    = errors.New("renderer: no render command specified")
	ErrNoRIBFile    = errors.New("renderer: no RIB output file specified")
	ErrRenderFailed = errors.New("renderer: render command failed")
)
