package ri

import (
	"fmt"
	"strconv"
	"strings"
)

// A Call is a single RenderMan Interface request and its positional arguments.
type Call struct {
	Name string
	Args []interface{}
}

// String renders the call as a line of ASCII RIB.
func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for _, arg := range c.Args {
		if p, isParams := arg.(Params); isParams && len(p) == 0 {
			continue
		}
		sb.WriteByte(' ')
		writeArg(&sb, arg)
	}
	return sb.String()
}

// Params returns the trailing parameter list of the call, if any.
func (c Call) Params() Params {
	if len(c.Args) == 0 {
		return nil
	}
	if p, ok := c.Args[len(c.Args)-1].(Params); ok {
		return p
	}
	return nil
}

func writeArg(sb *strings.Builder, arg interface{}) {
	switch v := arg.(type) {
	case Params:
		for i, p := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Quote(p.Decl))
			sb.WriteByte(' ')
			writeArray(sb, p.Value)
		}
	case string:
		sb.WriteString(strconv.Quote(v))
	case float32:
		sb.WriteString(formatFloat(v))
	case int:
		sb.WriteString(strconv.Itoa(v))
	default:
		fmt.Fprintf(sb, "%v", v)
	}
}

func writeArray(sb *strings.Builder, value interface{}) {
	sb.WriteByte('[')
	switch v := value.(type) {
	case []float32:
		for i, f := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(formatFloat(f))
		}
	case float32:
		sb.WriteString(formatFloat(v))
	case []int:
		for i, n := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(n))
		}
	case int:
		sb.WriteString(strconv.Itoa(v))
	case []string:
		for i, s := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Quote(s))
		}
	case string:
		sb.WriteString(strconv.Quote(v))
	default:
		fmt.Fprintf(sb, "%v", v)
	}
	sb.WriteByte(']')
}

// Format a float using the shortest representation that survives a round
// trip at single precision.
func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
