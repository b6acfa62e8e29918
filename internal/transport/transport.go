package transport

import (
	"context"
	"net/http"
	"unicode/utf8"
)

// Request is the narrow request shape the client sends.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

// Response is the narrow response shape the client consumes.
type Response struct {
	StatusCode int
	Header     http.Header
	// Body is nil when the transport produced no body at all.
	Body []byte
}

// Text reports whether the body can be read as text: it must be present
// and valid UTF-8. The declared content type is not consulted.
func (r *Response) Text() bool {
	if r == nil || r.Body == nil {
		return false
	}
	return utf8.Valid(r.Body)
}

// Transport executes a single request. Implementations must be safe for
// concurrent use. A returned error means no usable response was received
// (network failure, timeout, cancellation).
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Func adapts a function to Transport.
type Func func(ctx context.Context, req *Request) (*Response, error)

func (f Func) Do(ctx context.Context, req *Request) (*Response, error) { return f(ctx, req) }
