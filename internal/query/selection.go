package query

import (
	"sort"
)

// Selection is an ordered list of requested fields.
type Selection []Field

// Field is one entry of a Selection. It is either a leaf, a node with
// children, or an omitted entry that never serializes.
type Field struct {
	Name     string
	Children Selection

	included bool
	nested   bool
}

// Leaf requests a scalar field.
func Leaf(name string) Field { return Field{Name: name, included: true} }

// Node requests an object field with a nested selection.
func Node(name string, children ...Field) Field {
	return Field{Name: name, Children: children, included: true, nested: true}
}

// Omit records a field that is present in the description but not requested.
func Omit(name string) Field { return Field{Name: name} }

func (f Field) Included() bool { return f.included }

func (f Field) IsLeaf() bool { return !f.nested }

// Leaves returns the dotted paths of all included leaves, in order.
func (s Selection) Leaves() []string {
	var out []string
	var walk func(prefix string, sel Selection)
	walk = func(prefix string, sel Selection) {
		for _, f := range sel {
			if !f.included {
				continue
			}
			name := prefix + f.Name
			if f.nested && hasIncluded(f.Children) {
				walk(name+".", f.Children)
				continue
			}
			out = append(out, name)
		}
	}
	walk("", s)
	return out
}

func hasIncluded(sel Selection) bool {
	for _, f := range sel {
		if f.included {
			return true
		}
	}
	return false
}

// SelectionFromMap converts a loosely typed record into a Selection using
// FieldFromValue for every entry. Keys are visited in sorted order.
func SelectionFromMap(m map[string]any) Selection {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Selection, 0, len(keys))
	for _, k := range keys {
		out = append(out, FieldFromValue(k, m[k]))
	}
	return out
}

// FieldFromValue converts one record entry: a nested map becomes a node, a
// Selection is adopted as the node's children, and any other value becomes
// a leaf when truthy and an omitted entry otherwise.
func FieldFromValue(name string, v any) Field {
	switch x := v.(type) {
	case map[string]any:
		return Node(name, SelectionFromMap(x)...)
	case Selection:
		return Node(name, x...)
	}
	if truthy(v) {
		return Leaf(name)
	}
	return Omit(name)
}

// truthy mirrors loose boolean conversion: nil, false, zero numbers and the
// empty string are falsy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0 && x == x
	case float64:
		return x != 0 && x == x
	}
	return true
}
