package response

import (
	"encoding/json"
	"fmt"
)

// Typed is a Result whose data has been decoded into T.
type Typed[T any] struct {
	Data       *T
	Errors     []GraphQLError
	Extensions map[string]any
}

// Err mirrors Result.Err.
func (t *Typed[T]) Err() error {
	if t == nil {
		return nil
	}
	r := Result{Errors: t.Errors}
	return r.Err()
}

// Decode converts the mapped data of r into T. A nil Data decodes to a nil
// pointer. Errors and extensions are carried over unchanged.
func Decode[T any](r *Result) (*Typed[T], error) {
	out := &Typed[T]{Errors: r.Errors, Extensions: r.Extensions}
	if r.Data == nil {
		return out, nil
	}
	b, err := json.Marshal(r.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	out.Data = &v
	return out, nil
}
