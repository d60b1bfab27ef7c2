package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// RequestOptions holds options for an HTTP request.
type RequestOptions struct {
	Headers     map[string]string
	QueryParams url.Values
	Body        any // For POST, PUT - will be JSON marshaled by adapter
}

// Response represents a general HTTP response.
type Response struct {
	StatusCode int
	Body       []byte      // Raw response body
	Headers    http.Header // Standard http.Header
	RequestURL string      // The URL that was requested
}

// TransportOptions configures the default resty-backed transport.
type TransportOptions struct {
	BaseURL             string
	Timeout             time.Duration // whole request/response cycle; zero means none
	IdleConnTimeout     time.Duration
	TLSHandshakeTimeout time.Duration
	Headers             map[string]string // sent with every request
}

// HTTPClient defines the interface for a generic HTTP client.
// Implementations handle the actual HTTP communication. When no response was
// received they return a *cstmerr.TransportError; any received response,
// whatever its status, is returned with a nil error.
type HTTPClient interface {
	Get(ctx context.Context, url string, opts *RequestOptions) (*Response, error)
	Post(ctx context.Context, url string, opts *RequestOptions) (*Response, error)
	Put(ctx context.Context, url string, opts *RequestOptions) (*Response, error)
	Delete(ctx context.Context, url string, opts *RequestOptions) (*Response, error)
}
