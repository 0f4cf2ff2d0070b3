package material

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Olluo/renderman-bottle/ri"
)

// Kind identifies the shading request a node is emitted with.
type Kind uint8

const (
	kindInvalid Kind = iota
	KindPattern
	KindDisplace
	KindBxdf
)

func (k Kind) String() string {
	switch k {
	case KindPattern:
		return "Pattern"
	case KindDisplace:
		return "Displace"
	case KindBxdf:
		return "Bxdf"
	}
	return "invalid"
}

// A Node is a single shader instance in a network.
type Node struct {
	Kind   Kind
	Shader string
	Handle string
	Params ri.Params
}

// A Network is an ordered shading network. Patterns are emitted in
// declaration order and may only reference patterns declared before them.
type Network struct {
	Name     string
	Patterns []Node
	Displace *Node
	Bxdf     Node
}

// Ref connects a parameter to the output of another node.
func Ref(typ, name, handle, output string) ri.Param {
	return ri.Param{
		Decl:  "reference " + typ + " " + name,
		Value: []string{handle + ":" + output},
	}
}

// Split a reference value into its handle and output parts.
func parseRef(p ri.Param) (handle, output string, err error) {
	values, ok := p.Value.([]string)
	if !ok || len(values) != 1 {
		return "", "", fmt.Errorf("reference %q must hold exactly one connection", p.Decl)
	}
	tokens := strings.SplitN(values[0], ":", 2)
	if len(tokens) != 2 || tokens[0] == "" || tokens[1] == "" {
		return "", "", fmt.Errorf("reference %q: malformed connection %q; expected handle:output", p.Decl, values[0])
	}
	return tokens[0], tokens[1], nil
}

// Validate the node parameters.
func (n Node) Validate() error {
	if n.Kind == kindInvalid {
		return errors.New("invalid node kind")
	}
	if n.Shader == "" {
		return fmt.Errorf("%s node %q: no shader specified", n.Kind, n.Handle)
	}
	if n.Handle == "" {
		return fmt.Errorf("%s node %q: handle cannot be empty", n.Kind, n.Shader)
	}

	for _, param := range n.Params {
		if err := validateParam(param); err != nil {
			return fmt.Errorf("%s node %q: %v", n.Kind, n.Handle, err)
		}
	}
	return nil
}

func validateParam(p ri.Param) error {
	if p.Type() == "reference" {
		_, _, err := parseRef(p)
		return err
	}

	name := p.Name()
	switch p.Type() {
	case "color":
		v, isVec := p.Value.([]float32)
		if !isVec || len(v) != 3 {
			return fmt.Errorf("color parameter %q requires 3 components", name)
		}
		// Ensure energy conservation
		if name == "diffuseColor" && (v[0] > 1.0 || v[1] > 1.0 || v[2] > 1.0) {
			return fmt.Errorf("energy conservation violation for parameter %q; ensure that all components are <= 1.0", name)
		}
		if v[0] < 0 || v[1] < 0 || v[2] < 0 {
			return fmt.Errorf("color parameter %q cannot contain negative components", name)
		}
	case "float":
		if strings.HasSuffix(name, "Roughness") || name == "roughness" {
			v, isVec := p.Value.([]float32)
			if !isVec || len(v) != 1 || v[0] < 0 || v[0] > 1.0 {
				return fmt.Errorf("values for parameter %q must be in the [0, 1] range", name)
			}
		}
	}
	return nil
}

// Validate the network. All handles must be unique and every reference must
// resolve to a pattern that is emitted before the referencing node.
func (n Network) Validate() error {
	if n.Name == "" {
		return errors.New("material name cannot be empty")
	}

	declared := make(map[string]struct{}, len(n.Patterns))
	checkRefs := func(node Node) error {
		for _, param := range node.Params {
			if param.Type() != "reference" {
				continue
			}
			handle, _, _ := parseRef(param)
			if _, ok := declared[handle]; !ok {
				return fmt.Errorf("material %q: %s node %q references undeclared pattern %q", n.Name, node.Kind, node.Handle, handle)
			}
		}
		return nil
	}
	checkNode := func(node Node, kind Kind) error {
		if node.Kind != kind {
			return fmt.Errorf("material %q: expected a %s node; got %s", n.Name, kind, node.Kind)
		}
		if err := node.Validate(); err != nil {
			return fmt.Errorf("material %q: %v", n.Name, err)
		}
		return checkRefs(node)
	}

	for _, node := range n.Patterns {
		if err := checkNode(node, KindPattern); err != nil {
			return err
		}
		if _, exists := declared[node.Handle]; exists {
			return fmt.Errorf("material %q: duplicate pattern handle %q", n.Name, node.Handle)
		}
		declared[node.Handle] = struct{}{}
	}

	if n.Displace != nil {
		if err := checkNode(*n.Displace, KindDisplace); err != nil {
			return err
		}
	}

	if n.Bxdf.Kind == kindInvalid {
		return fmt.Errorf("material %q: missing bxdf", n.Name)
	}
	return checkNode(n.Bxdf, KindBxdf)
}

// Emit validates the network and issues it against r.
func (n Network) Emit(r ri.Interface) error {
	if err := n.Validate(); err != nil {
		return err
	}

	for _, node := range n.Patterns {
		r.Pattern(node.Shader, node.Handle, node.Params)
	}
	if n.Displace != nil {
		r.Displace(n.Displace.Shader, n.Displace.Handle, n.Displace.Params)
	}
	r.Bxdf(n.Bxdf.Shader, n.Bxdf.Handle, n.Bxdf.Params)
	return nil
}

// Shaders returns the distinct shader names used by the network.
func (n Network) Shaders() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	for _, node := range n.Patterns {
		add(node.Shader)
	}
	if n.Displace != nil {
		add(n.Displace.Shader)
	}
	add(n.Bxdf.Shader)
	return out
}
