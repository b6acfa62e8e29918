package events

import "time"

// HTTPClientStart is emitted before an outbound HTTP request.
// Context carries the request context.
type HTTPClientStart struct {
	Method string
	URL    string
}

// HTTPClientFinish is emitted after the round trip. Status is 0 when no
// response was received.
type HTTPClientFinish struct {
	Method   string
	URL      string
	Status   int
	Err      error
	Duration time.Duration
}
