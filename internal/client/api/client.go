// Package api is the client side of the GymBro REST backend.
//
// Every call goes through one Doer built from an explicit middleware chain:
//
//	Logging -> RequestID -> BearerAuth -> ResetOnUnauthorized -> transport
//
// BearerAuth reads the session token at send time, so a login or logout is
// visible to the very next request. A 401 clears the session before the
// failure reaches the caller. Failures are always *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dmitrijs2005/gymbro/internal/logging"
)

// maxBodySize caps how much of a response is read.
const maxBodySize = 1 << 20

// Session is what the client needs from the session store.
type Session interface {
	TokenSource
	Invalidator
}

// Client talks to the backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	doer    Doer
	log     logging.Logger
}

type options struct {
	transport http.RoundTripper
	extra     []Middleware
}

// Option tunes New.
type Option func(*options)

// WithTransport replaces the base round tripper. It is still wrapped by
// otelhttp.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithMiddleware appends middleware between ResetOnUnauthorized and the
// transport.
func WithMiddleware(mws ...Middleware) Option {
	return func(o *options) { o.extra = append(o.extra, mws...) }
}

// New returns a Client for baseURL. timeout bounds each call end to end and
// must be positive.
func New(baseURL string, timeout time.Duration, sess Session, log logging.Logger, opts ...Option) (*Client, error) {

	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", baseURL)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid timeout %s: must be positive", timeout)
	}
	if sess == nil {
		return nil, fmt.Errorf("session is required")
	}
	if log == nil {
		log = logging.Nop()
	}

	o := &options{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(o.transport),
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	mws := []Middleware{
		Logging(log),
		RequestID(),
		BearerAuth(sess),
		ResetOnUnauthorized(sess, log),
	}
	mws = append(mws, o.extra...)

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		doer:    Chain(httpClient, mws...),
		log:     log,
	}, nil
}

// BaseURL returns the normalized base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends in as JSON (when non-nil) and decodes a 2xx body into out (when
// non-nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return newError(KindMalformedResponse, resp.StatusCode, "", fmt.Errorf("empty body"))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newError(KindMalformedResponse, resp.StatusCode, "", err)
	}
	return nil
}
