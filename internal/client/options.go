package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hanpama/gqlclient/internal/transport"
)

// Options configures a Client. All fields are read-only once the client is
// built.
//
// Defaults:
// - Timeout:   30s, used only when Transport is nil
// - Transport: transport.NewHTTP with Timeout
// - Logger:    discards everything
type Options struct {
	Headers   http.Header
	Timeout   time.Duration
	Transport transport.Transport
	Logger    *slog.Logger

	// CheckDocument parses every built document before sending it and fails
	// the call without I/O when it is not a valid single-field operation.
	CheckDocument bool
}

type Option func(*Options)

const defaultTimeout = 30 * time.Second

func defaultOptions() *Options {
	return &Options{Headers: http.Header{}, Timeout: defaultTimeout}
}

// WithHeaders adds static headers sent with every request. Content-Type is
// always overridden with application/json.
func WithHeaders(headers map[string]string) Option {
	return func(o *Options) {
		for k, v := range headers {
			o.Headers.Set(k, v)
		}
	}
}

func WithHeader(key, value string) Option {
	return func(o *Options) { o.Headers.Add(key, value) }
}

// WithTimeout sets the round trip timeout of the default transport. Zero
// disables it.
func WithTimeout(d time.Duration) Option         { return func(o *Options) { o.Timeout = d } }
func WithTransport(t transport.Transport) Option { return func(o *Options) { o.Transport = t } }
func WithLogger(l *slog.Logger) Option           { return func(o *Options) { o.Logger = l } }
func WithDocumentCheck() Option                  { return func(o *Options) { o.CheckDocument = true } }
