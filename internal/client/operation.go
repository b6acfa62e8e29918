package client

import (
	"sort"

	"github.com/hanpama/gqlclient/internal/query"
)

// Operation describes one GraphQL call against a single root field.
type Operation struct {
	// Name is the root field to call; the payload is read from data[Name].
	Name      string
	Kind      query.Kind
	Selection query.Selection
	// Variables are sent as the request's variables and forwarded to the
	// root field as arguments of the same name.
	Variables map[string]any
	// VariableTypes declares GraphQL types for variables. Declarations for
	// variables absent from Variables are dropped from the document.
	VariableTypes query.VariableTypes
}

// VariableNames returns the keys of Variables in sorted order.
func (op Operation) VariableNames() []string {
	if len(op.Variables) == 0 {
		return nil
	}
	names := make([]string, 0, len(op.Variables))
	for n := range op.Variables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Document builds the GraphQL document for op.
func (op Operation) Document() string {
	return query.Build(op.Kind, op.VariableTypes, op.Name, op.VariableNames(), op.Selection)
}
