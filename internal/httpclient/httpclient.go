// Package httpclient wraps a shared *http.Client with response
// classification: network failures become *TransportError, non-2xx
// responses become *StatusError. The wrapper never retries.
package httpclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultTotalTimeout   = 20 * time.Second

	// maxBodyBytes caps how much of a response body is buffered.
	maxBodyBytes = 8 << 20

	// RequestIDHeader is the eBay correlation header echoed on responses.
	RequestIDHeader = "X-Ebay-C-Request-Id"
)

// TransportError is a network-level failure: the request never produced
// an HTTP response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("executing %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a response with a status code in [400, 600).
type StatusError struct {
	Method    string
	URL       string
	Code      int
	Body      string
	RequestID string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.URL, e.Code, e.Body)
}

// Retryable reports whether err is a transport failure or a 5xx response.
// Context cancellation is never retryable.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var te *TransportError
	if errors.As(err, &te) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= http.StatusInternalServerError
	}
	return false
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// Response is a fully-read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// RequestID returns the remote correlation id, if any.
func (r *Response) RequestID() string {
	return r.Header.Get(RequestIDHeader)
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}
	return nil
}

// Client executes requests on a shared connection pool.
type Client struct {
	hc             *http.Client
	connectTimeout time.Duration
	totalTimeout   time.Duration
	transport      http.RoundTripper
}

// Option configures the Client.
type Option func(*Client)

// WithConnectTimeout sets the dial and TLS handshake timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.connectTimeout = d
	}
}

// WithTimeout sets the total per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.totalTimeout = d
	}
}

// WithTransport overrides the base round tripper. Tests use this to point
// the client at an httptest server transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// New creates a Client. The transport is instrumented with OpenTelemetry.
func New(opts ...Option) *Client {
	c := &Client{
		connectTimeout: defaultConnectTimeout,
		totalTimeout:   defaultTotalTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	base := c.transport
	if base == nil {
		base = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   c.connectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: c.connectTimeout,
			MaxIdleConns:        64,
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		}
	}

	c.hc = &http.Client{
		Timeout:   c.totalTimeout,
		Transport: otelhttp.NewTransport(base),
	}
	return c
}

// Execute sends req and reads the whole body. Status codes in [400, 600)
// produce a *StatusError.
func (c *Client) Execute(req *http.Request) (*Response, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{
			Method: req.Method,
			URL:    req.URL.String(),
			Err:    fmt.Errorf("reading response body: %w", err),
		}
	}

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < 600 {
		return nil, &StatusError{
			Method:    req.Method,
			URL:       req.URL.String(),
			Code:      resp.StatusCode,
			Body:      strings.TrimSpace(string(body)),
			RequestID: resp.Header.Get(RequestIDHeader),
		}
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// ExecuteOptional is Execute with 404 mapped to (nil, nil).
func (c *Client) ExecuteOptional(req *http.Request) (*Response, error) {
	resp, err := c.Execute(req)
	if IsStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	return resp, err
}

// NewJSONRequest builds a request with body encoded as JSON. A nil body
// sends no payload.
func NewJSONRequest(ctx context.Context, method, rawURL string, body any) (*http.Request, error) {
	var r io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, r)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// NewFormRequest builds a POST with an urlencoded form body.
func NewFormRequest(ctx context.Context, rawURL string, form url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Bearer sets an OAuth2 bearer token on req.
func Bearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// Basic sets HTTP basic credentials on req.
func Basic(req *http.Request, user, password string) *http.Request {
	creds := base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
	req.Header.Set("Authorization", "Basic "+creds)
	return req
}
