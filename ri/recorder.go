package ri

import "sort"

// Recorder keeps every call in memory. It applies the same validation rules
// as Stream, which makes it suitable for tests and for collecting scene
// statistics without producing any output.
type Recorder struct {
	emitter

	Calls []Call
}

func NewRecorder() *Recorder {
	r := &Recorder{}
	r.emitter.out = r
	return r
}

func (r *Recorder) configure(name string, params Params) {
	r.Calls = append(r.Calls, Call{Name: "Option", Args: []interface{}{name, params}})
}

func (r *Recorder) begin(name string) error {
	r.Calls = append(r.Calls, Call{Name: "Begin", Args: []interface{}{name}})
	return nil
}

func (r *Recorder) emit(c Call, _ int) error {
	r.Calls = append(r.Calls, c)
	return nil
}

func (r *Recorder) end() error {
	r.Calls = append(r.Calls, Call{Name: "End"})
	return nil
}

// Named returns the recorded calls with the given request name.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the sequence of recorded request names.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

// Stats tallies the recorded calls.
func (r *Recorder) Stats() Stats {
	s := Stats{Calls: make(map[string]int)}
	for _, c := range r.Calls {
		s.Calls[c.Name]++
	}
	return s
}

// Stats holds per-request call counts.
type Stats struct {
	Calls map[string]int
}

var primitiveCalls = []string{"Cylinder", "Disk", "Patch"}

// Primitives returns the number of geometric primitives.
func (s Stats) Primitives() int {
	total := 0
	for _, name := range primitiveCalls {
		total += s.Calls[name]
	}
	return total
}

// Lights returns the number of light sources.
func (s Stats) Lights() int {
	return s.Calls["Light"]
}

// ShadingNodes returns the number of Bxdf, Pattern and Displace nodes.
func (s Stats) ShadingNodes() int {
	return s.Calls["Bxdf"] + s.Calls["Pattern"] + s.Calls["Displace"]
}

// Names returns the request names in alphabetical order.
func (s Stats) Names() []string {
	names := make([]string, 0, len(s.Calls))
	for name := range s.Calls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
