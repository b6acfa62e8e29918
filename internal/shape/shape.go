package shape

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Shape is a declarative description of an expected value. The set of
// implementations is closed; build shapes with the constructors in this
// package.
type Shape interface {
	String() string
	mapValue(v any, path Path) (any, []Failure)
}

type missing struct{}

func (missing) String() string { return "undefined" }

// Missing stands for an absent object property.
var Missing any = missing{}

// Path locates a value inside a document. Elements are property names
// (string) or list indexes (int).
type Path []any

func (p Path) String() string {
	var b strings.Builder
	for i, e := range p {
		switch v := e.(type) {
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(v))
			b.WriteByte(']')
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

func (p Path) with(e any) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = e
	return out
}

// Failure is one validation violation.
type Failure struct {
	Path    Path
	Message string
}

func (f Failure) Error() string {
	if len(f.Path) == 0 {
		return f.Message
	}
	return f.Path.String() + ": " + f.Message
}

// Validate checks v against s and returns the mapped value. The mapped value
// is only meaningful when no failures are returned.
func Validate(v any, s Shape) (any, []Failure) {
	out, failures := s.mapValue(v, nil)
	if len(failures) > 0 {
		return nil, failures
	}
	if out == Missing {
		return nil, nil
	}
	return out, nil
}

func mismatch(path Path, want Shape, got any) []Failure {
	return []Failure{{
		Path:    path,
		Message: fmt.Sprintf("expected value of type %s but found %s", want, describe(got)),
	}}
}

func describe(v any) string {
	switch x := v.(type) {
	case missing:
		return "undefined"
	case nil:
		return "null"
	case string:
		return "string " + strconv.Quote(x)
	case bool:
		return "boolean " + strconv.FormatBool(x)
	case float64, float32, int, int32, int64, json.Number:
		return fmt.Sprintf("number %v", x)
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
