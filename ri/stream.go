package ri

import (
	"bufio"
	"io"
	"strings"
)

const (
	ribHeader   = "##RenderMan RIB"
	ribVersion  = "version 3.04"
	indentWidth = 4
)

// Stream writes calls as ASCII RIB. Indentation of nested blocks is enabled
// by issuing Option("rib", "string asciistyle" "indented") before Begin.
type Stream struct {
	emitter

	w        *bufio.Writer
	indented bool
}

// NewStream creates a RIB stream that writes to w. The caller remains
// responsible for closing w after End returns.
func NewStream(w io.Writer) *Stream {
	s := &Stream{w: bufio.NewWriter(w)}
	s.emitter.out = s
	return s
}

func (s *Stream) configure(name string, params Params) {
	v, ok := params.Get("asciistyle")
	if !ok {
		return
	}
	switch style := v.(type) {
	case string:
		s.indented = style == "indented"
	case []string:
		s.indented = len(style) > 0 && style[0] == "indented"
	}
}

func (s *Stream) begin(name string) error {
	if _, err := s.w.WriteString(ribHeader + "\n"); err != nil {
		return err
	}
	if name != "" {
		if _, err := s.w.WriteString("# " + name + "\n"); err != nil {
			return err
		}
	}
	_, err := s.w.WriteString(ribVersion + "\n")
	return err
}

func (s *Stream) emit(c Call, depth int) error {
	var indent string
	if s.indented && depth > 0 {
		indent = strings.Repeat(" ", depth*indentWidth)
	}

	lines := []string{c.String()}
	if c.Name == "ArchiveRecord" && len(c.Args) == 2 {
		lines = archiveLines(c.Args[0], c.Args[1])
	}
	for _, line := range lines {
		if _, err := s.w.WriteString(indent + line); err != nil {
			return err
		}
		if err := s.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stream) end() error {
	return s.w.Flush()
}

// Archive records are written verbatim or as RIB comments. Every line of a
// multi-line comment is prefixed so it cannot be parsed as a request.
func archiveLines(kind, text interface{}) []string {
	k, _ := kind.(string)
	t, _ := text.(string)
	lines := strings.Split(t, "\n")
	if k == Verbatim {
		return lines
	}
	for i, line := range lines {
		lines[i] = "# " + line
	}
	return lines
}
