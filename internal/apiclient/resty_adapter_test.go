package apiclient

import (
	"appcenter-go/internal/cstmerr"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyAdapterSendsRequest(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotAuth, gotAgent, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("X-Client")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("X-Request-Id", "req-1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	adapter := NewRestyAdapter(TransportOptions{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Headers: map[string]string{"X-Client": "appcenter-go"},
	})
	defer adapter.Close()

	resp, err := adapter.Post(context.Background(), "/api/apps", &RequestOptions{
		Headers:     map[string]string{"Authorization": "Bearer abc"},
		QueryParams: url.Values{"b": {"2"}, "a": {"1"}},
		Body:        map[string]string{"name": "demo"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/apps", gotPath)
	assert.Equal(t, "a=1&b=2", gotQuery)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "appcenter-go", gotAgent)
	assert.Contains(t, gotType, "application/json")
	assert.JSONEq(t, `{"name":"demo"}`, string(gotBody))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, "req-1", resp.Headers.Get("X-Request-Id"))
}

func TestRestyAdapterReturnsErrorStatusesWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	adapter := NewRestyAdapter(TransportOptions{BaseURL: srv.URL})
	defer adapter.Close()

	for name, call := range map[string]func(context.Context, string, *RequestOptions) (*Response, error){
		"get":    adapter.Get,
		"put":    adapter.Put,
		"delete": adapter.Delete,
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := call(context.Background(), "/x", nil)
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, "boom", string(resp.Body))
		})
	}
}

func TestRestyAdapterTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	adapter := NewRestyAdapter(TransportOptions{BaseURL: base, Timeout: 2 * time.Second})
	defer adapter.Close()

	resp, err := adapter.Get(context.Background(), "/api/tags", nil)
	assert.Nil(t, resp)

	var transportErr *cstmerr.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, transportErr.Response == nil)
}

func TestRestyAdapterTransportErrorKeepsPartialResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		conn, buf, err := hj.Hijack()
		if err != nil {
			return
		}
		// Promise more body than is sent, then drop the connection.
		_, _ = buf.WriteString("HTTP/1.1 200 OK\r\n" +
			"Content-Type: application/json\r\n" +
			"Content-Length: 64\r\n" +
			"X-Request-Id: req-7\r\n\r\n" +
			`{"ok":tr`)
		_ = buf.Flush()
		_ = conn.Close()
	}))
	defer srv.Close()

	adapter := NewRestyAdapter(TransportOptions{BaseURL: srv.URL, Timeout: 5 * time.Second})
	defer adapter.Close()

	resp, err := adapter.Get(context.Background(), "/stream", nil)
	assert.Nil(t, resp)

	var transportErr *cstmerr.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, err.Error(), "transport error")

	partial, ok := transportErr.Response.(*Response)
	require.True(t, ok, "expected *Response, got %T", transportErr.Response)
	assert.Equal(t, http.StatusOK, partial.StatusCode)
	assert.Equal(t, "req-7", partial.Headers.Get("X-Request-Id"))
	assert.Contains(t, partial.RequestURL, "/stream")
	assert.Nil(t, partial.Body)
}
