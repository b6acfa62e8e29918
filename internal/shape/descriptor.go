package shape

import (
	"fmt"
	"strings"
)

// FromDescriptor builds a Shape from a declarative descriptor as found in
// YAML or JSON documents:
//
//	"string", "number", "int", "boolean", "unknown"   primitives
//	"T?"                                              optional and nullable T
//	"[T]" or a one-element list [T]                  array of T
//	{"key": T, ...}                                   object
//
// Object keys are declared in sorted order.
func FromDescriptor(d any) (Shape, error) {
	return fromDescriptor(d, nil)
}

func fromDescriptor(d any, path Path) (Shape, error) {
	switch x := d.(type) {
	case string:
		return fromTypeName(strings.TrimSpace(x), path)
	case []any:
		if len(x) != 1 {
			return nil, descriptorError(path, "list descriptor must have exactly one element, got %d", len(x))
		}
		item, err := fromDescriptor(x[0], path.with(0))
		if err != nil {
			return nil, err
		}
		return Array(item), nil
	case map[string]any:
		keys := sortedKeys(x)
		props := make([]Property, 0, len(keys))
		for _, k := range keys {
			s, err := fromDescriptor(x[k], path.with(k))
			if err != nil {
				return nil, err
			}
			props = append(props, Prop(k, s))
		}
		return Object(props...), nil
	case nil:
		return nil, descriptorError(path, "missing descriptor")
	}
	return nil, descriptorError(path, "unsupported descriptor %T", d)
}

func fromTypeName(name string, path Path) (Shape, error) {
	if rest, ok := strings.CutSuffix(name, "?"); ok {
		inner, err := fromTypeName(strings.TrimSpace(rest), path)
		if err != nil {
			return nil, err
		}
		return Optional(Nullable(inner)), nil
	}
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		inner, err := fromTypeName(strings.TrimSpace(name[1:len(name)-1]), path)
		if err != nil {
			return nil, err
		}
		return Array(inner), nil
	}
	switch strings.ToLower(name) {
	case "string", "id":
		return String(), nil
	case "number", "float":
		return Number(), nil
	case "int":
		return Int(), nil
	case "boolean", "bool":
		return Boolean(), nil
	case "unknown", "any":
		return Unknown(), nil
	}
	return nil, descriptorError(path, "unknown type %q", name)
}

func descriptorError(path Path, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if len(path) > 0 {
		msg = path.String() + ": " + msg
	}
	return fmt.Errorf("%w: %s", ErrDescriptor, msg)
}
