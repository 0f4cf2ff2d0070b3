package material

import "github.com/Olluo/renderman-bottle/types"

var (
	// Bottle body.
	Plastic = Finish{
		Name:       "plastic",
		Color:      types.RGB8(25, 0, 51),
		Roughness:  0.75,
		Scratches:  0.35,
		Scuffs:     0.2,
		Bump:       0.01,
		BumpShader: ShaderRoundedEdge,
	}

	// Purple band around the lower cap.
	Rubber = Finish{
		Name:      "rubber",
		Color:     types.RGB(0.0, 1.0, 1.0),
		Roughness: 0.75,
		Scuffs:    0.3,
	}

	// Lower cap.
	BlackPlastic = Finish{
		Name:       "blackPlastic",
		Color:      types.RGB(0.0, 1.0, 1.0),
		Roughness:  0.75,
		Scratches:  0.2,
		Scuffs:     0.2,
		Bump:       0.005,
		BumpShader: ShaderRoundedEdge,
	}

	// Upper cap.
	ClearPlastic = Finish{
		Name:       "clearPlastic",
		Color:      types.RGB(0.0, 1.0, 0.0),
		Roughness:  0.2,
		Scratches:  0.25,
		Scuffs:     0.1,
		Bump:       0.005,
		BumpShader: ShaderRoundedEdge,
	}

	// Cap lock; shares the black plastic name with the lower cap.
	CapLock = Finish{
		Name:       "blackPlastic",
		Color:      types.RGB(1.0, 1.0, 0.0),
		Roughness:  0.2,
		Scratches:  0.2,
		Scuffs:     0.2,
		Bump:       0.01,
		BumpShader: ShaderKnurl,
	}

	Wood = Finish{
		Name:       "wood",
		Color:      types.RGB(1, 0.6, 0.5),
		Roughness:  0.75,
		BaseShader: ShaderWoodGrain,
		Scratches:  0.3,
		Scuffs:     0.3,
		Bump:       0.01,
		BumpShader: ShaderRoundedEdge,
	}
)
