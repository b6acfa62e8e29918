package query

import (
	"sort"
	"strings"
)

// VariableType declares the GraphQL type of one operation variable.
type VariableType struct {
	Name string
	Type string
}

// VariableTypes is an ordered list of variable type declarations.
type VariableTypes []VariableType

// TypesFromMap builds VariableTypes from a map in sorted name order.
func TypesFromMap(m map[string]string) VariableTypes {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make(VariableTypes, len(names))
	for i, n := range names {
		out[i] = VariableType{Name: n, Type: m[n]}
	}
	return out
}

// Lookup returns the declared type for name.
func (vt VariableTypes) Lookup(name string) (string, bool) {
	for _, v := range vt {
		if v.Name == name {
			return v.Type, true
		}
	}
	return "", false
}

// Build assembles the document for a single root field operation.
//
// variableNames lists the variables sent with this call, in the order their
// call-site arguments are emitted. variableTypes may declare more names than
// are sent; only declarations for sent variables are emitted.
func Build(kind Kind, variableTypes VariableTypes, operationName string, variableNames []string, selection Selection) string {
	var b strings.Builder
	b.WriteString(kind.String())
	writeTypeDecls(&b, variableTypes, variableNames)
	b.WriteString(" { ")
	b.WriteString(operationName)
	writeCallArgs(&b, variableNames)
	b.WriteString(Fields(selection))
	b.WriteString(" }")
	return b.String()
}

func writeCallArgs(b *strings.Builder, names []string) {
	if len(names) == 0 {
		return
	}
	b.WriteByte('(')
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteString(": $")
		b.WriteString(n)
	}
	b.WriteByte(')')
}

func writeTypeDecls(b *strings.Builder, types VariableTypes, names []string) {
	sent := make(map[string]struct{}, len(names))
	for _, n := range names {
		sent[n] = struct{}{}
	}
	first := true
	for _, t := range types {
		if _, ok := sent[t.Name]; !ok {
			continue
		}
		if first {
			b.WriteByte('(')
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteByte('$')
		b.WriteString(t.Name)
		b.WriteString(": ")
		b.WriteString(t.Type)
	}
	if !first {
		b.WriteByte(')')
	}
}

// Fields serializes a selection as ` {a b {c}}`. A selection without
// included fields serializes to the empty string.
func Fields(selection Selection) string {
	parts := make([]string, 0, len(selection))
	for _, f := range selection {
		if !f.included {
			continue
		}
		if f.nested {
			parts = append(parts, f.Name+Fields(f.Children))
			continue
		}
		parts = append(parts, f.Name)
	}
	if len(parts) == 0 {
		return ""
	}
	return " {" + strings.Join(parts, " ") + "}"
}
