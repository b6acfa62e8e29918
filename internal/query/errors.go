package query

import "errors"

var (
	// ErrUnknownKind is returned when a kind literal is neither query nor mutation.
	ErrUnknownKind = errors.New("query: unknown operation kind")
)
