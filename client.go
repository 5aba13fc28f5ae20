// Package trackline is the Go SDK for the Trackline record-management API.
// A Client is bound to one base domain and one token source; record
// operations hang off the typed Resource accessors (Expenses, Projects).
package trackline

import (
	"net/http"
	"time"
)

// Client talks to a Trackline record API. It is stateless aside from the
// base domain read once at construction; every operation is a single-shot
// call that acquires its token and issues one request.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New constructs a Client for the given base domain. The token source
// supplies the per-request access token; use StaticTokenSource for a fixed
// token or SessionTokenSource to derive it from the active session.
// Additional options can be provided via functional arguments.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if tokens == nil {
		panic("token source cannot be nil")
	}

	c := &Client{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap HTTP transport to automatically add the Authorization header
	c.wrapTransportWithToken()

	return c
}

// NewFromEnv constructs a Client from TRACKLINE_* environment variables
// (see Config). Options passed here override the environment settings.
func NewFromEnv(tokens TokenSource, opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithHTTPTimeout(cfg.HTTPTimeout)}, opts...)
	return New(cfg.Domain, tokens, opts...), nil
}

// wrapTransportWithToken wraps the HTTP client's transport to automatically
// add the Authorization header to all requests using the configured token
// source. Installed last so it sits above any debug transport.
func (c *Client) wrapTransportWithToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &tokenTransport{
		base:   baseTransport,
		tokens: c.tokens,
	}
}

// --------------------------------------------------------------------
// Record resources
// --------------------------------------------------------------------

// Expenses returns the expense collection bound to this client.
func (c *Client) Expenses() *Resource[Expense] {
	return NewResource[Expense](c, expenseDescriptor{})
}

// Projects returns the project collection bound to this client.
func (c *Client) Projects() *Resource[Project] {
	return NewResource[Project](c, projectDescriptor{})
}
