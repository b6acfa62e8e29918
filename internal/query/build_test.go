package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	language "github.com/hanpama/gqlclient/internal/language"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		kind      Kind
		types     VariableTypes
		op        string
		variables []string
		selection Selection
		want      string
	}{
		{
			name:      "type filtered by sent variables",
			kind:      Query,
			types:     VariableTypes{{"x", "Int"}, {"y", "String"}},
			op:        "op",
			variables: []string{"x"},
			want:      "query($x: Int) { op(x: $x) }",
		},
		{
			name: "no variables no selection",
			kind: Query,
			op:   "ping",
			want: "query { ping }",
		},
		{
			name:      "mutation with nested selection",
			kind:      Mutation,
			types:     VariableTypes{{"input", "CreateUserInput!"}},
			op:        "createUser",
			variables: []string{"input"},
			selection: Selection{Node("user", Leaf("id"), Leaf("name")), Leaf("ok")},
			want:      "mutation($input: CreateUserInput!) { createUser(input: $input) {user {id name} ok} }",
		},
		{
			name:      "type declarations follow declaration order",
			kind:      Query,
			types:     VariableTypes{{"b", "Int"}, {"a", "Int"}},
			op:        "op",
			variables: []string{"a", "b"},
			want:      "query($b: Int, $a: Int) { op(a: $a, b: $b) }",
		},
		{
			name:      "variable without declared type",
			kind:      Query,
			op:        "op",
			variables: []string{"a"},
			selection: Selection{Leaf("id")},
			want:      "query { op(a: $a) {id} }",
		},
		{
			name:      "omitted fields at every depth",
			kind:      Query,
			op:        "op",
			selection: Selection{Leaf("a"), Omit("b"), Node("c", Omit("d"), Leaf("e"))},
			want:      "query { op {a c {e}} }",
		},
		{
			name:      "node with only omitted children",
			kind:      Query,
			op:        "op",
			selection: Selection{Node("a", Omit("b"))},
			want:      "query { op {a} }",
		},
		{
			name:      "all fields omitted",
			kind:      Query,
			op:        "op",
			selection: Selection{Omit("a"), Omit("b")},
			want:      "query { op }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.kind, tt.types, tt.op, tt.variables, tt.selection)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFieldsNested(t *testing.T) {
	got := Fields(Selection{Node("user", Leaf("id"), Leaf("name"))})
	require.Equal(t, " {user {id name}}", got)
}

func TestFieldsEmpty(t *testing.T) {
	require.Equal(t, "", Fields(nil))
	require.Equal(t, "", Fields(Selection{}))
	require.NotContains(t, Build(Query, nil, "op", nil, Selection{}), "{ op {")
}

func TestBuildPassesNamesVerbatim(t *testing.T) {
	got := Build(Query, nil, "op", nil, Selection{Leaf("not a-field")})
	require.Equal(t, "query { op {not a-field} }", got)
}

func TestBuildIsDeterministic(t *testing.T) {
	sel := SelectionFromMap(map[string]any{"z": true, "a": true, "m": map[string]any{"y": 1, "b": "x"}})
	types := TypesFromMap(map[string]string{"q": "String", "p": "Int"})
	first := Build(Query, types, "op", []string{"p", "q"}, sel)
	for range 20 {
		require.Equal(t, first, Build(Query, types, "op", []string{"p", "q"}, sel))
	}
	require.Equal(t, "query($p: Int, $q: String) { op(p: $p, q: $q) {a m {b y} z} }", first)
}

func TestSelectionRoundTrip(t *testing.T) {
	selections := []Selection{
		{Leaf("id")},
		{Leaf("id"), Node("owner", Leaf("login"), Node("avatar", Leaf("url"), Leaf("size")))},
		{Node("edges", Node("node", Leaf("id"), Leaf("title"))), Node("pageInfo", Leaf("hasNextPage"), Leaf("endCursor"))},
		{Leaf("a"), Omit("b"), Node("c", Omit("d"), Leaf("e")), Node("f", Omit("g"))},
	}
	for _, sel := range selections {
		doc := Build(Query, nil, "root", nil, sel)
		parsed, err := language.ParseQuery(doc)
		require.NoError(t, err, doc)

		root := parsed.Operations[0].SelectionSet[0].(*language.Field)
		got := language.LeafPaths(root.SelectionSet)
		if diff := cmp.Diff(sel.Leaves(), got); diff != "" {
			t.Fatalf("leaf set mismatch for %q (-want +got):\n%s", doc, diff)
		}
	}
}

func TestBuildParsesWithVariables(t *testing.T) {
	doc := Build(Mutation, VariableTypes{{"id", "ID!"}, {"unused", "Int"}, {"name", "String"}}, "rename", []string{"id", "name"}, Selection{Leaf("id")})
	require.NoError(t, language.CheckOperation(doc, language.Mutation, "rename"))

	parsed, err := language.ParseQuery(doc)
	require.NoError(t, err)
	defs := parsed.Operations[0].VariableDefinitions
	require.Len(t, defs, 2)
	require.Equal(t, "id", defs[0].Variable)
	require.Equal(t, "ID!", defs[0].Type.String())
	require.Equal(t, "name", defs[1].Variable)
}
