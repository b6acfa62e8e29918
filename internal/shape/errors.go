package shape

import "errors"

var (
	// ErrDescriptor is returned when a shape descriptor cannot be interpreted.
	ErrDescriptor = errors.New("shape: invalid descriptor")
)
