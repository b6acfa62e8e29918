package transport

import (
	"net/http"
	"time"
)

// Options configures the HTTP transport.
//
// Defaults:
// - Timeout:      30s, applied to the whole round trip including the body read
// - MaxBodyBytes: 0 (unlimited)
// - Client:       a new http.Client with Timeout
//
// When Client is provided its own Timeout is left untouched.
type Options struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	Client       *http.Client
}

type Option func(*Options)

func defaultOptions() *Options {
	return &Options{Timeout: 30 * time.Second}
}

func WithTimeout(d time.Duration) Option   { return func(o *Options) { o.Timeout = d } }
func WithMaxBodyBytes(n int64) Option      { return func(o *Options) { o.MaxBodyBytes = n } }
func WithHTTPClient(c *http.Client) Option { return func(o *Options) { o.Client = c } }
