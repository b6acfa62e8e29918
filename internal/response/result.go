package response

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Location is a line/column position in the request document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// GraphQLError is one entry of a response's errors list.
type GraphQLError struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e GraphQLError) Error() string {
	return e.Message
}

// Result is the outcome of one operation. Errors may be present together
// with Data when the server reported a partial success.
type Result struct {
	Data       any            `json:"data"`
	Errors     []GraphQLError `json:"errors,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Err returns the result's errors as a gqlerror.List, or nil when there are
// none.
func (r *Result) Err() error {
	if r == nil || len(r.Errors) == 0 {
		return nil
	}
	list := make(gqlerror.List, len(r.Errors))
	for i, e := range r.Errors {
		ge := &gqlerror.Error{Message: e.Message, Extensions: e.Extensions}
		for _, l := range e.Locations {
			ge.Locations = append(ge.Locations, gqlerror.Location{Line: l.Line, Column: l.Column})
		}
		for _, p := range e.Path {
			switch v := p.(type) {
			case string:
				ge.Path = append(ge.Path, ast.PathName(v))
			case int:
				ge.Path = append(ge.Path, ast.PathIndex(v))
			case int64:
				ge.Path = append(ge.Path, ast.PathIndex(int(v)))
			case float64:
				ge.Path = append(ge.Path, ast.PathIndex(int(v)))
			}
		}
		list[i] = ge
	}
	return list
}
