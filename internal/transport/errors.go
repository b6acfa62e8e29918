package transport

import "errors"

var (
	// ErrBodyTooLarge indicates the response body exceeded MaxBodyBytes.
	ErrBodyTooLarge = errors.New("transport: response body too large")
)
