package query

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// Kind is the operation kind. The zero value is Query; Mutation is the only
// other value.
type Kind struct {
	mutation bool
}

var (
	Query    = Kind{}
	Mutation = Kind{mutation: true}
)

// ParseKind accepts exactly "query" or "mutation".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "query":
		return Query, nil
	case "mutation":
		return Mutation, nil
	}
	return Query, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	if k.mutation {
		return "mutation"
	}
	return "query"
}

// Operation returns the gqlparser operation constant for k.
func (k Kind) Operation() ast.Operation {
	if k.mutation {
		return ast.Mutation
	}
	return ast.Query
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
