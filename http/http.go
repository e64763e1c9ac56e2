// Package http talks to the Cellar SPARQL endpoint and resource API over
// HTTP. It provides implementations of eurlex.QueryExecutor and
// eurlex.DocumentService.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/eurlex"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the client to Cellar.
const DefaultUserAgent = "eurlex-go (+https://github.com/fwojciec/eurlex)"

// maxErrorBody caps how much of an error response is quoted in messages.
const maxErrorBody = 512

// Option configures an Executor or a DocumentService.
// Options that do not apply to a type are ignored by it.
type Option func(*options)

type options struct {
	endpoint  string
	baseURL   string
	timeout   time.Duration
	userAgent string
	rps       float64
	client    *http.Client
	lenient   *slog.Logger
}

// WithEndpoint sets the SPARQL endpoint URL.
// Defaults to eurlex.DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithBaseURL sets the base URL used to expand CELEX numbers and cellar ids.
// Defaults to eurlex.DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (30s) if not specified.
// Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithRateLimit limits outgoing requests to rps per second.
// Zero or negative disables limiting.
func WithRateLimit(rps float64) Option {
	return func(o *options) {
		o.rps = rps
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithLenient makes Executor log failed queries to logger and return an
// empty result set instead of an error.
func WithLenient(logger *slog.Logger) Option {
	return func(o *options) {
		o.lenient = logger
	}
}

func newOptions(opts []Option) options {
	o := options{
		endpoint:  eurlex.DefaultEndpoint,
		baseURL:   eurlex.DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// client sends requests with a shared user agent and rate limit.
type client struct {
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
}

func newClient(o options) *client {
	c := &client{http: o.client, userAgent: o.userAgent}
	if c.http == nil {
		c.http = &http.Client{Timeout: o.timeout}
	}
	if o.rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(o.rps), 1)
	}
	return c
}

// do sends the request. The caller closes the response body.
func (c *client) do(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, eurlex.Errorf(eurlex.ERETRIEVAL, "%s %s: %v", req.Method, req.URL, err)
	}
	return resp, nil
}

// newRequest builds a request carrying the given headers.
func newRequest(ctx context.Context, method, target string, body io.Reader, header http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, eurlex.Errorf(eurlex.EINVALID, "invalid request URL %q: %v", target, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	return req, nil
}

// statusError describes an unexpected response status.
func statusError(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := fmt.Sprintf("%s %s returned HTTP %d", resp.Request.Method, resp.Request.URL, resp.StatusCode)
	if len(snippet) > 0 {
		msg += ": " + string(snippet)
	}
	return eurlex.Errorf(eurlex.ERETRIEVAL, "%s", msg)
}
