package response

import "errors"

var (
	// ErrDecode indicates mapped data could not be converted to the requested Go type.
	ErrDecode = errors.New("response: decode data")
)
