package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	eventbus "github.com/hanpama/gqlclient/internal/eventbus"
	events "github.com/hanpama/gqlclient/internal/events"
	language "github.com/hanpama/gqlclient/internal/language"
	reqid "github.com/hanpama/gqlclient/internal/reqid"
	"github.com/hanpama/gqlclient/internal/response"
	"github.com/hanpama/gqlclient/internal/shape"
	"github.com/hanpama/gqlclient/internal/transport"
)

// Client sends single-field GraphQL operations to one endpoint. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	baseURL   string
	opts      *Options
	transport transport.Transport
	logger    *slog.Logger
}

// New creates a client for the GraphQL endpoint at baseURL.
func New(baseURL string, opts ...Option) *Client {
	o := defaultOptions()
	for _, f := range opts {
		f(o)
	}
	tr := o.Transport
	if tr == nil {
		tr = transport.NewHTTP(transport.WithTimeout(o.Timeout))
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{baseURL: baseURL, opts: o, transport: tr, logger: logger}
}

// BaseURL returns the endpoint the client posts to.
func (c *Client) BaseURL() string { return c.baseURL }

// requestBody omits variables only when the map is nil; an empty map is
// sent as {}.
type requestBody struct {
	Query     string          `json:"query"`
	Variables *map[string]any `json:"variables,omitempty"`
}

// Execute builds op's document, posts it and maps the response body with
// payload describing data[op.Name]. A nil payload accepts any value.
//
// The returned error is non-nil only when no response could be obtained
// (network failure, timeout, cancellation) or the request could not be
// prepared. Every other problem, including errors returned by the server,
// is reported in the result's Errors.
//
// Each call carries its own request id, derived from ctx.
func (c *Client) Execute(ctx context.Context, op Operation, payload shape.Shape) (res *response.Result, err error) {
	doc := op.Document()
	if c.opts.CheckDocument {
		if err := language.CheckOperation(doc, op.Kind.Operation(), op.Name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}
	reqBody := requestBody{Query: doc}
	if op.Variables != nil {
		reqBody.Variables = &op.Variables
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	header := c.opts.Headers.Clone()
	header.Set("Content-Type", "application/json")

	ctx, _ = reqid.NewContext(ctx)
	start := time.Now()
	eventbus.Publish(ctx, events.OperationStart{
		OperationName: op.Name,
		OperationType: op.Kind.String(),
		Query:         doc,
		URL:           c.baseURL,
	})
	defer func() {
		errorCount := 0
		if res != nil {
			errorCount = len(res.Errors)
		}
		duration := time.Since(start)
		eventbus.Publish(ctx, events.OperationFinish{
			OperationName: op.Name,
			OperationType: op.Kind.String(),
			URL:           c.baseURL,
			ErrorCount:    errorCount,
			Err:           err,
			Duration:      duration,
		})
		c.logger.DebugContext(ctx,
			"graphql operation",
			slog.String("operationName", op.Name),
			slog.String("operationType", op.Kind.String()),
			slog.String("endpoint", c.baseURL),
			slog.Duration("duration", duration),
			slog.Int("errors", errorCount),
			slog.Any("err", err),
		)
	}()

	resp, err := c.transport.Do(ctx, &transport.Request{
		Method: http.MethodPost,
		URL:    c.baseURL,
		Header: header,
		Body:   string(body),
	})
	if err != nil {
		return nil, err
	}
	if !resp.Text() {
		return response.InvalidBody(c.baseURL), nil
	}
	var raw any
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		c.logger.DebugContext(ctx, "undecodable response body",
			slog.String("endpoint", c.baseURL),
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()),
		)
		return response.InvalidBody(c.baseURL), nil
	}
	return response.Map(raw, op.Name, payload), nil
}

// Do executes op and decodes the mapped payload into T.
func Do[T any](ctx context.Context, c *Client, op Operation, payload shape.Shape) (*response.Typed[T], error) {
	res, err := c.Execute(ctx, op, payload)
	if err != nil {
		return nil, err
	}
	return response.Decode[T](res)
}
