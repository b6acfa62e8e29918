package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hanpama/gqlclient/internal/client"
	"github.com/hanpama/gqlclient/internal/query"
	"github.com/hanpama/gqlclient/internal/shape"
)

// opFile is the YAML operation file. Mapping order of selection and
// variableTypes is preserved.
//
//	name: user
//	kind: query
//	selection:
//	  id: true
//	  profile:
//	    bio: true
//	variables:
//	  id: "42"
//	variableTypes:
//	  id: ID!
//	payload:
//	  id: string
//	  profile:
//	    bio: string?
type opFile struct {
	Name          string         `yaml:"name"`
	Kind          query.Kind     `yaml:"kind"`
	Selection     yaml.Node      `yaml:"selection"`
	Variables     map[string]any `yaml:"variables"`
	VariableTypes yaml.Node      `yaml:"variableTypes"`
	Payload       any            `yaml:"payload"`
}

func loadOperation(path string) (client.Operation, shape.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return client.Operation{}, nil, fmt.Errorf("read operation: %w", err)
	}
	return parseOperation(data)
}

func parseOperation(data []byte) (client.Operation, shape.Shape, error) {
	var f opFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return client.Operation{}, nil, fmt.Errorf("parse operation: %w", err)
	}
	if f.Name == "" {
		return client.Operation{}, nil, fmt.Errorf("operation name is required")
	}
	sel, err := selectionFromNode(&f.Selection)
	if err != nil {
		return client.Operation{}, nil, fmt.Errorf("selection: %w", err)
	}
	types, err := typesFromNode(&f.VariableTypes)
	if err != nil {
		return client.Operation{}, nil, fmt.Errorf("variableTypes: %w", err)
	}
	var payload shape.Shape
	if f.Payload != nil {
		if payload, err = shape.FromDescriptor(f.Payload); err != nil {
			return client.Operation{}, nil, fmt.Errorf("payload: %w", err)
		}
	}
	op := client.Operation{
		Name:          f.Name,
		Kind:          f.Kind,
		Selection:     sel,
		Variables:     f.Variables,
		VariableTypes: types,
	}
	return op, payload, nil
}

func selectionFromNode(n *yaml.Node) (query.Selection, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	out := make(query.Selection, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		val := n.Content[i+1]
		if val.Kind == yaml.MappingNode {
			children, err := selectionFromNode(val)
			if err != nil {
				return nil, err
			}
			out = append(out, query.Node(name, children...))
			continue
		}
		var v any
		if err := val.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", val.Line, err)
		}
		out = append(out, query.FieldFromValue(name, v))
	}
	return out, nil
}

func typesFromNode(n *yaml.Node) (query.VariableTypes, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	out := make(query.VariableTypes, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: type of %s must be a string", v.Line, k.Value)
		}
		out = append(out, query.VariableType{Name: k.Value, Type: v.Value})
	}
	return out, nil
}
