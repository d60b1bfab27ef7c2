package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"resty.dev/v3"
)

// RestyAdapter implements the HTTPClient interface using the resty library.
type RestyAdapter struct {
	client *resty.Client
}

// NewRestyAdapter creates a new RestyAdapter from opts. Zero transport
// timeouts fall back to 30s idle and 60s TLS handshake.
func NewRestyAdapter(opts TransportOptions) *RestyAdapter {
	transportSettings := &resty.TransportSettings{
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 60 * time.Second,
	}
	if opts.IdleConnTimeout > 0 {
		transportSettings.IdleConnTimeout = opts.IdleConnTimeout
	}
	if opts.TLSHandshakeTimeout > 0 {
		transportSettings.TLSHandshakeTimeout = opts.TLSHandshakeTimeout
	}
	client := resty.NewWithTransportSettings(transportSettings)
	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if len(opts.Headers) > 0 {
		client.SetHeaders(opts.Headers)
	}
	return &RestyAdapter{client: client}
}

// NewRestyAdapterWithClient creates a new RestyAdapter using a pre-configured *resty.Client.
func NewRestyAdapterWithClient(client *resty.Client) *RestyAdapter {
	if client == nil {
		return NewRestyAdapter(TransportOptions{})
	}
	return &RestyAdapter{client: client}
}

// Close releases idle connections held by the underlying client.
func (ra *RestyAdapter) Close() error {
	return ra.client.Close()
}

// buildRequest configures a resty request from RequestOptions. The body is
// left unparsed so classification sees the raw bytes.
func (ra *RestyAdapter) buildRequest(ctx context.Context, opts *RequestOptions) *resty.Request {
	req := ra.client.R().SetContext(ctx).SetDoNotParseResponse(true)
	if opts != nil {
		if opts.Headers != nil {
			req.SetHeaders(opts.Headers)
		}
		if opts.QueryParams != nil {
			req.SetQueryParamsFromValues(opts.QueryParams)
		}
		if opts.Body != nil {
			req.SetHeader("Content-Type", "application/json")
			req.SetBody(opts.Body) // Resty handles JSON marshaling for struct bodies
		}
	}
	return req
}

func (ra *RestyAdapter) execute(ctx context.Context, method, url string, opts *RequestOptions) (*Response, error) {
	restyResp, err := ra.buildRequest(ctx, opts).Execute(method, url)
	if err != nil { // Network errors, client-side timeouts before response, etc.
		return nil, transportError(partialResponse(restyResp),
			fmt.Errorf("HTTP %s request to %s failed: %w", method, url, err))
	}
	if restyResp.RawResponse == nil {
		return nil, transportError(nil, fmt.Errorf("HTTP %s request to %s: no response received", method, url))
	}
	defer restyResp.RawResponse.Body.Close()

	body, err := io.ReadAll(restyResp.RawResponse.Body)
	if err != nil {
		return nil, transportError(partialResponse(restyResp),
			fmt.Errorf("reading %s response from %s: %w", method, url, err))
	}

	return &Response{
		StatusCode: restyResp.StatusCode(),
		Body:       body,
		Headers:    restyResp.Header(),
		RequestURL: restyResp.Request.URL,
	}, nil
}

// partialResponse returns whatever status/headers arrived before a failure,
// or nil when nothing did.
func partialResponse(restyResp *resty.Response) *Response {
	if restyResp == nil || restyResp.RawResponse == nil {
		return nil
	}
	return &Response{
		StatusCode: restyResp.StatusCode(),
		Headers:    restyResp.Header(),
		RequestURL: restyResp.Request.URL,
	}
}

// Get implements the HTTPClient interface Get method.
func (ra *RestyAdapter) Get(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return ra.execute(ctx, http.MethodGet, url, opts)
}

// Post implements the HTTPClient interface Post method.
func (ra *RestyAdapter) Post(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return ra.execute(ctx, http.MethodPost, url, opts)
}

// Put implements the HTTPClient interface Put method.
func (ra *RestyAdapter) Put(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return ra.execute(ctx, http.MethodPut, url, opts)
}

// Delete implements the HTTPClient interface Delete method.
func (ra *RestyAdapter) Delete(ctx context.Context, url string, opts *RequestOptions) (*Response, error) {
	return ra.execute(ctx, http.MethodDelete, url, opts)
}
