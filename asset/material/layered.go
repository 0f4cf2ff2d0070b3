package material

import (
	"github.com/Olluo/renderman-bottle/ri"
	"github.com/Olluo/renderman-bottle/types"
)

// Names of the compiled OSL patterns shipped in the shaders directory.
const (
	ShaderScratches   = "scratches"
	ShaderRoundedEdge = "roundedEdge"
	ShaderKnurl       = "knurl"
	ShaderWoodGrain   = "woodGrain"
)

// A Finish describes a surface as a base colour with optional wear layers
// and displacement.
type Finish struct {
	Name      string
	Color     types.Color
	Roughness float32

	// Optional pattern producing the base colour. When empty the base
	// colour is used as is.
	BaseShader string

	// Blend weights of the wear layers in the [0, 1] range. A zero weight
	// omits the layer.
	Scratches float32
	Scuffs    float32

	// Displacement amount and the pattern driving it. A zero amount
	// omits displacement.
	Bump       float32
	BumpShader string

	// The coordinate system the patterns are evaluated in.
	CoordSys string
}

// Layered builds a shading network for f. The base colour, scratches and
// scuffs are chained through PxrBlend nodes whose result drives the
// diffuse colour of a PxrSurface.
func Layered(f Finish) Network {
	net := Network{Name: f.Name}
	handle := func(suffix string) string {
		return f.Name + "_" + suffix
	}
	coordSys := func(params ri.Params) ri.Params {
		if f.CoordSys == "" {
			return params
		}
		return append(params, ri.String("coordsys", f.CoordSys))
	}

	// The current colour of the layer stack; either a literal or a
	// connection to the last blend node.
	colorParam := func(name string) ri.Param {
		return ri.Color(name, f.Color.Slice())
	}

	if f.BaseShader != "" {
		base := handle("base")
		net.Patterns = append(net.Patterns, Node{
			Kind:   KindPattern,
			Shader: f.BaseShader,
			Handle: base,
			Params: coordSys(ri.Params{ri.Color("baseColor", f.Color.Slice())}),
		})
		colorParam = func(name string) ri.Param {
			return Ref("color", name, base, "resultRGB")
		}
	}

	if f.Scratches > 0 {
		mask := handle("scratches")
		blend := handle("scratched")
		net.Patterns = append(net.Patterns,
			Node{
				Kind:   KindPattern,
				Shader: ShaderScratches,
				Handle: mask,
				Params: coordSys(ri.Params{
					ri.Float("density", 40),
					ri.Float("width", 0.002),
				}),
			},
			Node{
				Kind:   KindPattern,
				Shader: "PxrBlend",
				Handle: blend,
				Params: ri.Params{
					ri.Int("operation", blendOver),
					ri.Color("topRGB", f.Color.Mul(1.6).Clamp().Slice()),
					Ref("float", "topA", mask, "resultF"),
					ri.Float("opacity", f.Scratches),
					colorParam("bottomRGB"),
				},
			},
		)
		colorParam = func(name string) ri.Param {
			return Ref("color", name, blend, "resultRGB")
		}
	}

	if f.Scuffs > 0 {
		mask := handle("scuffs")
		blend := handle("scuffed")
		net.Patterns = append(net.Patterns,
			Node{
				Kind:   KindPattern,
				Shader: "PxrFractal",
				Handle: mask,
				Params: ri.Params{
					ri.Int("layers", 6),
					ri.Float("frequency", 4),
					ri.Float("erosion", 0.5),
				},
			},
			Node{
				Kind:   KindPattern,
				Shader: "PxrBlend",
				Handle: blend,
				Params: ri.Params{
					ri.Int("operation", blendMultiply),
					ri.Color("topRGB", f.Color.Mul(0.7).Slice()),
					Ref("float", "topA", mask, "resultF"),
					ri.Float("opacity", f.Scuffs),
					colorParam("bottomRGB"),
				},
			},
		)
		colorParam = func(name string) ri.Param {
			return Ref("color", name, blend, "resultRGB")
		}
	}

	if f.Bump > 0 && f.BumpShader != "" {
		bump := handle("bump")
		net.Patterns = append(net.Patterns, Node{
			Kind:   KindPattern,
			Shader: f.BumpShader,
			Handle: bump,
			Params: coordSys(nil),
		})
		net.Displace = &Node{
			Kind:   KindDisplace,
			Shader: "PxrDisplace",
			Handle: handle("displace"),
			Params: ri.Params{
				ri.Float("dispAmount", f.Bump),
				Ref("float", "dispScalar", bump, "resultF"),
			},
		}
	}

	net.Bxdf = Node{
		Kind:   KindBxdf,
		Shader: "PxrSurface",
		Handle: f.Name,
		Params: ri.Params{
			colorParam("diffuseColor"),
			ri.Float("diffuseRoughness", f.Roughness),
		},
	}
	return net
}

// PxrBlend operation codes.
const (
	blendOver     = 19
	blendMultiply = 1
)
