package response

import (
	"fmt"
	"math"

	"github.com/hanpama/gqlclient/internal/shape"
)

// UnknownErrorMessage replaces an empty validation failure message.
const UnknownErrorMessage = "Unknown error"

var errorShape = shape.Object(
	shape.Prop("message", shape.String()),
	shape.Prop("locations", shape.Optional(shape.Array(shape.Object(
		shape.Prop("line", shape.Number()),
		shape.Prop("column", shape.Number()),
	)))),
	shape.Prop("path", shape.Optional(shape.Array(shape.OneOf(shape.String(), shape.Number())))),
	shape.Prop("extensions", shape.Optional(shape.Dict(shape.Unknown()))),
)

// Envelope is the shape every GraphQL response shares regardless of the
// operation.
var Envelope = shape.Object(
	shape.Prop("data", shape.Optional(shape.Nullable(shape.Unknown()))),
	shape.Prop("errors", shape.Optional(shape.Array(errorShape))),
	shape.Prop("extensions", shape.Optional(shape.Dict(shape.Unknown()))),
)

// Map validates a decoded response body and narrows data[operationName] to
// payload. It never fails; every problem is reported in the returned
// result's Errors.
//
// The envelope is checked first. If it is malformed, or if the payload slice
// does not match payload, the result carries a nil Data and one error per
// violation. Otherwise the server's errors and extensions are kept and Data
// is replaced with the mapped payload slice. A nil payload accepts any value.
func Map(raw any, operationName string, payload shape.Shape) *Result {
	env, failures := shape.Validate(raw, Envelope)
	if len(failures) > 0 {
		return failed(failures)
	}
	if payload == nil {
		payload = shape.Unknown()
	}
	data, failures := shape.Validate(payloadSlice(raw, operationName), shape.Optional(shape.Nullable(payload)))
	if len(failures) > 0 {
		return failed(failures)
	}

	m := env.(map[string]any)
	res := &Result{Data: data}
	if errs, ok := m["errors"].([]any); ok {
		res.Errors = toGraphQLErrors(errs)
	}
	if ext, ok := m["extensions"].(map[string]any); ok {
		res.Extensions = ext
	}
	return res
}

// InvalidBody reports a response whose body could not be read as JSON text.
func InvalidBody(url string) *Result {
	return &Result{Errors: []GraphQLError{{
		Message: fmt.Sprintf("Invalid response body format from %s", url),
	}}}
}

func payloadSlice(raw any, operationName string) any {
	body, ok := raw.(map[string]any)
	if !ok {
		return shape.Missing
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		return shape.Missing
	}
	v, ok := data[operationName]
	if !ok {
		return shape.Missing
	}
	return v
}

func failed(failures []shape.Failure) *Result {
	errs := make([]GraphQLError, len(failures))
	for i, f := range failures {
		msg := UnknownErrorMessage
		if f.Message != "" {
			msg = f.Error()
		}
		errs[i] = GraphQLError{Message: msg}
	}
	return &Result{Errors: errs}
}

// toGraphQLErrors converts errors already mapped by errorShape. Locations
// are truncated to int; integral path entries become int and fractional ones
// stay float64.
func toGraphQLErrors(list []any) []GraphQLError {
	out := make([]GraphQLError, len(list))
	for i, item := range list {
		m := item.(map[string]any)
		e := GraphQLError{Message: m["message"].(string)}
		if locs, ok := m["locations"].([]any); ok {
			e.Locations = make([]Location, len(locs))
			for j, l := range locs {
				lm := l.(map[string]any)
				e.Locations[j] = Location{Line: int(lm["line"].(float64)), Column: int(lm["column"].(float64))}
			}
		}
		if path, ok := m["path"].([]any); ok {
			e.Path = make([]any, len(path))
			for j, p := range path {
				if n, ok := p.(float64); ok && n == math.Trunc(n) {
					e.Path[j] = int(n)
					continue
				}
				e.Path[j] = p
			}
		}
		if ext, ok := m["extensions"].(map[string]any); ok {
			e.Extensions = ext
		}
		out[i] = e
	}
	return out
}
