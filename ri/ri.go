// Package ri provides a RenderMan Interface call surface together with two
// implementations: a Stream that writes ASCII RIB and a Recorder that keeps
// the issued calls in memory.
package ri

// Tokens understood by the renderer.
const (
	Comment     = "comment"
	Verbatim    = "verbatim"
	Perspective = "perspective"
	FOV         = "float fov"
	Bilinear    = "bilinear"
	P           = "P"
)

// The Interface is implemented by all RenderMan Interface targets. Calls do not
// return errors individually; the first failure is retained and reported by
// Err and End.
type Interface interface {
	// Frame scope.
	Begin(name string)
	End() error
	Err() error

	// Frame options. Only valid outside the world block.
	Option(name string, params Params)
	Display(name, driver, channels string, params Params)
	Format(width, height int, pixelAspect float32)
	Projection(name string, params Params)
	Hider(name string, params Params)
	PixelVariance(variance float32)
	Integrator(name, handle string, params Params)

	ArchiveRecord(kind, text string)

	WorldBegin()
	WorldEnd()
	TransformBegin()
	TransformEnd()
	AttributeBegin()
	AttributeEnd()
	Attribute(name string, params Params)

	Translate(x, y, z float32)
	Scale(x, y, z float32)
	Rotate(angle, x, y, z float32)
	CoordinateSystem(name string)

	// Shading and lights. Only valid inside the world block.
	Bxdf(name, handle string, params Params)
	Pattern(name, handle string, params Params)
	Displace(name, handle string, params Params)
	Light(name, handle string, params Params)

	// Geometry. Only valid inside the world block.
	Disk(height, radius, thetaMax float32)
	Cylinder(radius, zMin, zMax, thetaMax float32)
	Patch(kind string, params Params)
}

// A Param is a single inline-declared parameter such as "color diffuseColor".
// Value must be one of float32, []float32, int, []int, string or []string.
type Param struct {
	Decl  string
	Value interface{}
}

// Params is an ordered parameter list; order is preserved on output.
type Params []Param

// Float declares a float parameter.
func Float(name string, v ...float32) Param {
	return Param{Decl: "float " + name, Value: v}
}

// Int declares an int parameter.
func Int(name string, v ...int) Param {
	return Param{Decl: "int " + name, Value: v}
}

// String declares a string parameter.
func String(name string, v ...string) Param {
	return Param{Decl: "string " + name, Value: v}
}

// Color declares a color parameter.
func Color(name string, rgb []float32) Param {
	return Param{Decl: "color " + name, Value: rgb}
}

// Points declares an untyped point list such as "P".
func Points(name string, p []float32) Param {
	return Param{Decl: name, Value: p}
}

// Get returns the value of the parameter whose declaration ends with name.
func (p Params) Get(name string) (interface{}, bool) {
	for _, param := range p {
		if param.Name() == name {
			return param.Value, true
		}
	}
	return nil, false
}

// Name returns the parameter name without its type declaration.
func (p Param) Name() string {
	for i := len(p.Decl) - 1; i >= 0; i-- {
		if p.Decl[i] == ' ' {
			return p.Decl[i+1:]
		}
	}
	return p.Decl
}

// Type returns the declared type (the first word of the declaration) or an
// empty string for untyped declarations.
func (p Param) Type() string {
	for i := 0; i < len(p.Decl); i++ {
		if p.Decl[i] == ' ' {
			return p.Decl[:i]
		}
	}
	return ""
}
