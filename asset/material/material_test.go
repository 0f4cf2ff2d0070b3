package material

import (
	"testing"

	"github.com/Olluo/renderman-bottle/ri"
	"github.com/Olluo/renderman-bottle/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryNetworksValidate(t *testing.T) {
	for _, f := range []Finish{Plastic, Rubber, BlackPlastic, ClearPlastic, CapLock, Wood} {
		f.CoordSys = "testCoordinates"
		if err := Layered(f).Validate(); err != nil {
			t.Errorf("finish %q: unexpected validation error: %v", f.Name, err)
		}
	}
}

func TestLibraryLayers(t *testing.T) {
	rubber := Layered(Rubber)
	assert.Nil(t, rubber.Displace)
	assert.Equal(t, []string{"PxrFractal", "PxrBlend", "PxrSurface"}, rubber.Shaders())

	plastic := Layered(Plastic)
	assert.Equal(t, []string{ShaderScratches, "PxrBlend", "PxrFractal", ShaderRoundedEdge, "PxrDisplace", "PxrSurface"}, plastic.Shaders())
	assert.Equal(t, ShaderKnurl, Layered(CapLock).Patterns[4].Shader)
	assert.Equal(t, ShaderWoodGrain, Layered(Wood).Patterns[0].Shader)
}

func TestLayeredWithoutLayers(t *testing.T) {
	net := Layered(Finish{Name: "plastic", Color: types.RGB8(25, 0, 51), Roughness: 0.75})
	require.NoError(t, net.Validate())
	assert.Empty(t, net.Patterns)
	assert.Nil(t, net.Displace)
	assert.Equal(t, "PxrSurface", net.Bxdf.Shader)
	assert.Equal(t, "plastic", net.Bxdf.Handle)

	v, ok := net.Bxdf.Params.Get("diffuseColor")
	require.True(t, ok)
	assert.Equal(t, types.RGB8(25, 0, 51).Slice(), v)
}

func TestLayeredChain(t *testing.T) {
	net := Layered(Finish{
		Name:       "wood",
		Color:      types.RGB(1, 0.6, 0.5),
		Roughness:  0.5,
		BaseShader: ShaderWoodGrain,
		Scratches:  0.3,
		Scuffs:     0.3,
		Bump:       0.01,
		BumpShader: ShaderRoundedEdge,
		CoordSys:   "tableCoordinates",
	})
	require.NoError(t, net.Validate())

	handles := make([]string, len(net.Patterns))
	for i, p := range net.Patterns {
		handles[i] = p.Handle
	}
	assert.Equal(t, []string{
		"wood_base", "wood_scratches", "wood_scratched", "wood_scuffs", "wood_scuffed", "wood_bump",
	}, handles)

	bottom, _ := net.Patterns[2].Params.Get("bottomRGB")
	assert.Equal(t, []string{"wood_base:resultRGB"}, bottom)
	bottom, _ = net.Patterns[4].Params.Get("bottomRGB")
	assert.Equal(t, []string{"wood_scratched:resultRGB"}, bottom)
	diffuse, _ := net.Bxdf.Params.Get("diffuseColor")
	assert.Equal(t, []string{"wood_scuffed:resultRGB"}, diffuse)

	require.NotNil(t, net.Displace)
	scalar, _ := net.Displace.Params.Get("dispScalar")
	assert.Equal(t, []string{"wood_bump:resultF"}, scalar)

	coordsys, _ := net.Patterns[0].Params.Get("coordsys")
	assert.Equal(t, []string{"tableCoordinates"}, coordsys)

	assert.Equal(t, []string{
		ShaderWoodGrain, ShaderScratches, "PxrBlend", "PxrFractal", ShaderRoundedEdge, "PxrDisplace", "PxrSurface",
	}, net.Shaders())
}

func TestEmitOrder(t *testing.T) {
	r := ri.NewRecorder()
	r.Begin("")
	r.WorldBegin()
	require.NoError(t, Layered(Plastic).Emit(r))
	r.WorldEnd()
	require.NoError(t, r.End())

	names := r.Names()
	assert.Equal(t, []string{
		"Begin", "WorldBegin",
		"Pattern", "Pattern", "Pattern", "Pattern", "Pattern",
		"Displace", "Bxdf",
		"WorldEnd", "End",
	}, names)
}

func TestValidationErrors(t *testing.T) {
	bxdf := Node{Kind: KindBxdf, Shader: "PxrSurface", Handle: "surf"}
	pattern := func(handle string, params ...ri.Param) Node {
		return Node{Kind: KindPattern, Shader: "PxrFractal", Handle: handle, Params: params}
	}

	invalid := []Network{
		{Bxdf: bxdf},
		{Name: "missingBxdf"},
		{Name: "emptyHandle", Patterns: []Node{pattern("")}, Bxdf: bxdf},
		{Name: "dup", Patterns: []Node{pattern("a"), pattern("a")}, Bxdf: bxdf},
		{Name: "forwardRef", Patterns: []Node{
			pattern("a", Ref("float", "topA", "b", "resultF")),
			pattern("b"),
		}, Bxdf: bxdf},
		{Name: "selfRef", Patterns: []Node{pattern("a", Ref("float", "topA", "a", "resultF"))}, Bxdf: bxdf},
		{Name: "malformedRef", Patterns: []Node{
			pattern("a", ri.Param{Decl: "reference float topA", Value: []string{"a"}}),
		}, Bxdf: bxdf},
		{Name: "energy", Bxdf: Node{Kind: KindBxdf, Shader: "PxrSurface", Handle: "s", Params: ri.Params{
			ri.Color("diffuseColor", []float32{1.1, 0, 0}),
		}}},
		{Name: "shortColor", Bxdf: Node{Kind: KindBxdf, Shader: "PxrSurface", Handle: "s", Params: ri.Params{
			ri.Color("specularFaceColor", []float32{1, 0}),
		}}},
		{Name: "roughness", Bxdf: Node{Kind: KindBxdf, Shader: "PxrSurface", Handle: "s", Params: ri.Params{
			ri.Float("diffuseRoughness", 1.5),
		}}},
		{Name: "wrongKind", Patterns: []Node{{Kind: KindBxdf, Shader: "PxrSurface", Handle: "x"}}, Bxdf: bxdf},
		{Name: "noShader", Bxdf: Node{Kind: KindBxdf, Handle: "s"}},
		{Name: "badDisplace", Displace: &Node{Kind: KindDisplace, Shader: "PxrDisplace", Handle: "d", Params: ri.Params{
			Ref("float", "dispScalar", "missing", "resultF"),
		}}, Bxdf: bxdf},
	}

	for index, net := range invalid {
		if err := net.Validate(); err == nil {
			t.Errorf("[net %d] expected validation error for %q", index, net.Name)
		}
	}
}

func TestEmitRejectsInvalidNetwork(t *testing.T) {
	r := ri.NewRecorder()
	r.Begin("")
	r.WorldBegin()
	err := Network{Name: "broken"}.Emit(r)
	assert.Error(t, err)
	assert.Empty(t, r.Named("Bxdf"))
}
