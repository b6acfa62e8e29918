package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	eventbus "github.com/hanpama/gqlclient/internal/eventbus"
	events "github.com/hanpama/gqlclient/internal/events"
	reqid "github.com/hanpama/gqlclient/internal/reqid"
)

// HTTP is a Transport backed by net/http.
type HTTP struct {
	client *http.Client
	opts   *Options
}

var _ Transport = (*HTTP)(nil)

func NewHTTP(opts ...Option) *HTTP {
	o := defaultOptions()
	for _, f := range opts {
		f(o)
	}
	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	}
	return &HTTP{client: client, opts: o}
}

func (t *HTTP) Do(ctx context.Context, req *Request) (resp *Response, err error) {
	hreq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, strings.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			hreq.Header.Add(k, v)
		}
	}
	if rid, ok := reqid.FromContext(ctx); ok && hreq.Header.Get(reqid.Header) == "" {
		hreq.Header.Set(reqid.Header, strconv.FormatInt(rid, 10))
	}

	status := 0
	start := time.Now()
	eventbus.Publish(ctx, events.HTTPClientStart{Method: req.Method, URL: req.URL})
	defer func() {
		eventbus.Publish(ctx, events.HTTPClientFinish{
			Method:   req.Method,
			URL:      req.URL,
			Status:   status,
			Err:      err,
			Duration: time.Since(start),
		})
	}()

	hresp, err := t.client.Do(hreq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer hresp.Body.Close()
	status = hresp.StatusCode

	reader := io.Reader(hresp.Body)
	if t.opts.MaxBodyBytes > 0 {
		reader = io.LimitReader(hresp.Body, t.opts.MaxBodyBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if t.opts.MaxBodyBytes > 0 && int64(len(body)) > t.opts.MaxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	return &Response{StatusCode: hresp.StatusCode, Header: hresp.Header, Body: body}, nil
}
