package ri

// A sink receives validated calls from an emitter.
type sink interface {
	begin(name string) error
	emit(c Call, depth int) error
	end() error

	// Apply a writer option issued before Begin.
	configure(name string, params Params)
}

// The emitter implements Interface on top of a sink. It validates call
// ordering and block nesting and retains the first error.
type emitter struct {
	tracker blockTracker
	out     sink
	err     error
}

func (e *emitter) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *emitter) call(scope callScope, name string, args ...interface{}) {
	if e.err != nil {
		return
	}
	if err := e.tracker.check(name, scope); err != nil {
		e.fail(err)
		return
	}
	e.fail(e.out.emit(Call{Name: name, Args: args}, e.tracker.Depth()))
}

func (e *emitter) open(name string, kind blockKind) {
	if e.err != nil {
		return
	}
	if kind == blockWorld {
		if err := e.tracker.check(name, scopeOptions); err != nil {
			e.fail(err)
			return
		}
	}
	depth := e.tracker.Depth()
	if err := e.tracker.push(name, kind); err != nil {
		e.fail(err)
		return
	}
	e.fail(e.out.emit(Call{Name: name}, depth))
}

func (e *emitter) close(name string, kind blockKind) {
	if e.err != nil {
		return
	}
	if err := e.tracker.pop(name, kind); err != nil {
		e.fail(err)
		return
	}
	e.fail(e.out.emit(Call{Name: name}, e.tracker.Depth()))
}

// Err returns the first error encountered.
func (e *emitter) Err() error {
	return e.err
}

func (e *emitter) Begin(name string) {
	if e.err != nil {
		return
	}
	if err := e.tracker.begin(); err != nil {
		e.fail(err)
		return
	}
	e.fail(e.out.begin(name))
}

func (e *emitter) End() error {
	if e.err != nil {
		return e.err
	}
	if err := e.tracker.end(); err != nil {
		e.fail(err)
		return err
	}
	e.fail(e.out.end())
	return e.err
}

func (e *emitter) Option(name string, params Params) {
	if e.err == nil && e.tracker.state == stateIdle && name == "rib" {
		e.out.configure(name, params)
		return
	}
	e.call(scopeOptions, "Option", name, params)
}

func (e *emitter) Display(name, driver, channels string, params Params) {
	e.call(scopeOptions, "Display", name, driver, channels, params)
}

func (e *emitter) Format(width, height int, pixelAspect float32) {
	e.call(scopeOptions, "Format", width, height, pixelAspect)
}

func (e *emitter) Projection(name string, params Params) {
	e.call(scopeOptions, "Projection", name, params)
}

func (e *emitter) Hider(name string, params Params) {
	e.call(scopeOptions, "Hider", name, params)
}

func (e *emitter) PixelVariance(variance float32) {
	e.call(scopeOptions, "PixelVariance", variance)
}

func (e *emitter) Integrator(name, handle string, params Params) {
	e.call(scopeOptions, "Integrator", name, handle, params)
}

func (e *emitter) ArchiveRecord(kind, text string) {
	e.call(scopeAny, "ArchiveRecord", kind, text)
}

func (e *emitter) WorldBegin()     { e.open("WorldBegin", blockWorld) }
func (e *emitter) WorldEnd()       { e.close("WorldEnd", blockWorld) }
func (e *emitter) TransformBegin() { e.open("TransformBegin", blockTransform) }
func (e *emitter) TransformEnd()   { e.close("TransformEnd", blockTransform) }
func (e *emitter) AttributeBegin() { e.open("AttributeBegin", blockAttribute) }
func (e *emitter) AttributeEnd()   { e.close("AttributeEnd", blockAttribute) }

func (e *emitter) Attribute(name string, params Params) {
	e.call(scopeAny, "Attribute", name, params)
}

func (e *emitter) Translate(x, y, z float32) {
	e.call(scopeAny, "Translate", x, y, z)
}

func (e *emitter) Scale(x, y, z float32) {
	e.call(scopeAny, "Scale", x, y, z)
}

func (e *emitter) Rotate(angle, x, y, z float32) {
	e.call(scopeAny, "Rotate", angle, x, y, z)
}

func (e *emitter) CoordinateSystem(name string) {
	e.call(scopeAny, "CoordinateSystem", name)
}

func (e *emitter) Bxdf(name, handle string, params Params) {
	e.call(scopeWorld, "Bxdf", name, handle, params)
}

func (e *emitter) Pattern(name, handle string, params Params) {
	e.call(scopeWorld, "Pattern", name, handle, params)
}

func (e *emitter) Displace(name, handle string, params Params) {
	e.call(scopeWorld, "Displace", name, handle, params)
}

func (e *emitter) Light(name, handle string, params Params) {
	e.call(scopeWorld, "Light", name, handle, params)
}

func (e *emitter) Disk(height, radius, thetaMax float32) {
	e.call(scopeWorld, "Disk", height, radius, thetaMax)
}

func (e *emitter) Cylinder(radius, zMin, zMax, thetaMax float32) {
	e.call(scopeWorld, "Cylinder", radius, zMin, zMax, thetaMax)
}

func (e *emitter) Patch(kind string, params Params) {
	e.call(scopeWorld, "Patch", kind, params)
}
