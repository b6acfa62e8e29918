package client

import (
	"testing"

	"github.com/hanpama/gqlclient/internal/query"
	"github.com/stretchr/testify/require"
)

func TestOperationDocument(t *testing.T) {
	op := Operation{
		Name:          "op",
		Kind:          query.Query,
		Variables:     map[string]any{"x": 1},
		VariableTypes: query.VariableTypes{{Name: "x", Type: "Int"}, {Name: "y", Type: "String"}},
	}
	require.Equal(t, "query($x: Int) { op(x: $x) }", op.Document())
}

func TestOperationVariableNamesSorted(t *testing.T) {
	op := Operation{Variables: map[string]any{"b": 1, "a": nil, "c": false}}
	require.Equal(t, []string{"a", "b", "c"}, op.VariableNames())
	require.Nil(t, Operation{}.VariableNames())
}
