package client

import "errors"

var (
	// ErrInvalidDocument is returned when document checking is enabled and
	// the built document does not parse as the expected operation.
	ErrInvalidDocument = errors.New("client: invalid document")
)
