package apiclient

import (
	"appcenter-go/internal/cstmerr"
	"appcenter-go/internal/tokenstore"
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"
)

// Request is an outgoing call as seen by the pipeline, before the transport.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    any

	// Sensitive responses carry credentials; their bodies are never logged.
	Sensitive bool
}

// RequestStage runs before the request is sent. A returned error aborts the
// call and nothing is sent.
type RequestStage interface {
	Name() string
	PrepareRequest(ctx context.Context, req *Request) error
}

// ResponseStage runs after the transport returns. resp is nil when err
// reports that no response was received. The returned error replaces err.
type ResponseStage interface {
	Name() string
	ClassifyResponse(ctx context.Context, req *Request, resp *Response, err error) error
}

// Pipeline is the ordered set of stages wrapped around every call.
type Pipeline struct {
	Request  []RequestStage
	Response []ResponseStage
}

// AuthInterceptor attaches the stored bearer token.
type AuthInterceptor struct {
	store  tokenstore.TokenStore
	logger hclog.Logger
}

func NewAuthInterceptor(store tokenstore.TokenStore, logger hclog.Logger) *AuthInterceptor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &AuthInterceptor{store: store, logger: logger}
}

func (a *AuthInterceptor) Name() string { return "prepareRequest" }

func (a *AuthInterceptor) PrepareRequest(ctx context.Context, req *Request) error {
	token, err := a.store.Get(ctx)
	if err != nil {
		return cstmerr.NewRequestPreparationError(err)
	}
	if token != "" {
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}
		req.Headers["Authorization"] = "Bearer " + token
	}
	a.logger.Debug("prepared request",
		"method", req.Method,
		"path", req.Path,
		"query", req.Query.Encode(),
		"headers", redactHeaders(req.Headers),
	)
	return nil
}

// ResponseClassifier turns an exchange into success or a typed failure:
// 500 is always ServerInternalError, otherwise the envelope ok flag decides.
type ResponseClassifier struct {
	logger hclog.Logger
}

func NewResponseClassifier(logger hclog.Logger) *ResponseClassifier {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ResponseClassifier{logger: logger}
}

func (c *ResponseClassifier) Name() string { return "classifyResponse" }

type envelopeHead struct {
	OK   *bool  `json:"ok"`
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (c *ResponseClassifier) ClassifyResponse(_ context.Context, req *Request, resp *Response, err error) error {
	if err != nil {
		if isClassified(err) {
			return err
		}
		return transportError(resp, err)
	}
	if resp == nil {
		return transportError(nil, errors.New("no response received"))
	}

	body := string(resp.Body)
	if req.Sensitive {
		body = "[REDACTED]"
	}
	c.logger.Debug("received response", "status", resp.StatusCode, "url", resp.RequestURL, "body", body)

	if resp.StatusCode == http.StatusInternalServerError {
		return cstmerr.NewServerInternalError(resp.RequestURL, resp.Body)
	}

	var head envelopeHead
	if decodeErr := json.Unmarshal(resp.Body, &head); decodeErr != nil || head.OK == nil || !*head.OK {
		return cstmerr.NewAPILogicalFailure(resp.StatusCode, head.Code, head.Msg, resp.Body, resp)
	}
	return nil
}

// transportError keeps a nil *Response out of the error's interface field so
// callers can compare Response against nil.
func transportError(resp *Response, err error) *cstmerr.TransportError {
	if resp == nil {
		return cstmerr.NewTransportError(nil, err)
	}
	return cstmerr.NewTransportError(resp, err)
}

func isClassified(err error) bool {
	var (
		transportErr *cstmerr.TransportError
		serverErr    *cstmerr.ServerInternalError
		logicalErr   *cstmerr.APILogicalFailure
	)
	return errors.As(err, &transportErr) || errors.As(err, &serverErr) || errors.As(err, &logicalErr)
}

func redactHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if http.CanonicalHeaderKey(k) == "Authorization" {
			v = "[REDACTED]"
		}
		out[k] = v
	}
	return out
}
