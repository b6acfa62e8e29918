package shape

import (
	"sort"
	"strings"
)

type optional struct{ inner Shape }

func (o optional) String() string { return "optional<" + o.inner.String() + ">" }

func (o optional) mapValue(v any, path Path) (any, []Failure) {
	if v == Missing {
		return Missing, nil
	}
	return o.inner.mapValue(v, path)
}

// Optional admits an absent value in addition to what s admits.
func Optional(s Shape) Shape { return optional{inner: s} }

type nullable struct{ inner Shape }

func (n nullable) String() string { return "nullable<" + n.inner.String() + ">" }

func (n nullable) mapValue(v any, path Path) (any, []Failure) {
	if v == nil {
		return nil, nil
	}
	return n.inner.mapValue(v, path)
}

// Nullable admits null in addition to what s admits.
func Nullable(s Shape) Shape { return nullable{inner: s} }

type array struct{ item Shape }

func (a array) String() string { return "array<" + a.item.String() + ">" }

func (a array) mapValue(v any, path Path) (any, []Failure) {
	list, ok := v.([]any)
	if !ok {
		return nil, mismatch(path, a, v)
	}
	out := make([]any, len(list))
	var failures []Failure
	for i, item := range list {
		mapped, fs := a.item.mapValue(item, path.with(i))
		if len(fs) > 0 {
			failures = append(failures, fs...)
			continue
		}
		if mapped == Missing {
			mapped = nil
		}
		out[i] = mapped
	}
	if len(failures) > 0 {
		return nil, failures
	}
	return out, nil
}

// Array admits a list whose every element matches item.
func Array(item Shape) Shape { return array{item: item} }

type dict struct{ value Shape }

func (d dict) String() string { return "dict<" + d.value.String() + ">" }

func (d dict) mapValue(v any, path Path) (any, []Failure) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch(path, d, v)
	}
	keys := sortedKeys(m)
	out := make(map[string]any, len(m))
	var failures []Failure
	for _, k := range keys {
		mapped, fs := d.value.mapValue(m[k], path.with(k))
		if len(fs) > 0 {
			failures = append(failures, fs...)
			continue
		}
		if mapped != Missing {
			out[k] = mapped
		}
	}
	if len(failures) > 0 {
		return nil, failures
	}
	return out, nil
}

// Dict admits an object with arbitrary keys whose values all match value.
func Dict(value Shape) Shape { return dict{value: value} }

type oneOf struct{ alternatives []Shape }

func (o oneOf) String() string {
	names := make([]string, len(o.alternatives))
	for i, a := range o.alternatives {
		names[i] = a.String()
	}
	return strings.Join(names, " | ")
}

func (o oneOf) mapValue(v any, path Path) (any, []Failure) {
	for _, a := range o.alternatives {
		if out, fs := a.mapValue(v, path); len(fs) == 0 {
			return out, nil
		}
	}
	return nil, mismatch(path, o, v)
}

// OneOf admits a value matching any of the alternatives; the first match
// produces the mapped value.
func OneOf(alternatives ...Shape) Shape { return oneOf{alternatives: alternatives} }

// Property is one entry of an Object shape.
type Property struct {
	// Name is the key in the mapped output.
	Name string
	// Key is the key in the input object.
	Key   string
	Shape Shape
}

// Prop declares a property read from and written to the same key.
func Prop(key string, s Shape) Property { return Property{Name: key, Key: key, Shape: s} }

// PropAs declares a property read from key and written to name.
func PropAs(name, key string, s Shape) Property { return Property{Name: name, Key: key, Shape: s} }

type object struct{ props []Property }

func (object) String() string { return "object" }

func (o object) mapValue(v any, path Path) (any, []Failure) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch(path, o, v)
	}
	out := make(map[string]any, len(o.props))
	var failures []Failure
	for _, p := range o.props {
		raw, present := m[p.Key]
		if !present {
			raw = Missing
		}
		mapped, fs := p.Shape.mapValue(raw, path.with(p.Key))
		if len(fs) > 0 {
			failures = append(failures, fs...)
			continue
		}
		if mapped != Missing {
			out[p.Name] = mapped
		}
	}
	if len(failures) > 0 {
		return nil, failures
	}
	return out, nil
}

// Object admits an object carrying the declared properties. Undeclared
// input keys are ignored and do not appear in the mapped output.
func Object(props ...Property) Shape { return object{props: props} }

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
