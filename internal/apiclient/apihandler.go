package apiclient

import (
	"appcenter-go/internal/cstmerr"
	SharedModels "appcenter-go/internal/shared"
	"appcenter-go/internal/tokenstore"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	App               = SharedModels.App
	Release           = SharedModels.Release
	Article           = SharedModels.Article
	Tag               = SharedModels.Tag
	UpdateCheckResult = SharedModels.UpdateCheckResult
)

const (
	authPath          = "/api/auth"
	appsPath          = "/api/apps"
	appInfoPath       = "/api/apps/info"
	releasesPath      = "/api/apps/releases"
	latestReleasePath = "/api/apps/releases/latest"
	invitationPath    = "/api/apps/invitation"
	articlesPath      = "/api/articles"
	tagsPath          = "/api/tags"
)

// Options configures an APIClient. The zero value is usable.
type Options struct {
	Debug bool
	// Storage defaults to a FileStore in tokenstore.DefaultDir().
	Storage   tokenstore.TokenStore
	Transport TransportOptions
	// HTTPClient replaces the resty transport built from Transport.
	HTTPClient HTTPClient
	// Logger receives debug output; ignored unless Debug is set.
	Logger hclog.Logger
}

// APIClient holds the transport, the token store and the stage pipeline.
type APIClient struct {
	client   HTTPClient
	storage  tokenstore.TokenStore
	pipeline Pipeline
	logger   hclog.Logger
}

// New creates a new APIClient. The pipeline is fixed here: token injection
// before the transport, classification after it.
func New(opts Options) *APIClient {
	logger := hclog.NewNullLogger()
	if opts.Debug {
		if opts.Logger != nil {
			logger = opts.Logger.Named("apiclient")
		} else {
			logger = hclog.New(&hclog.LoggerOptions{Name: "apiclient", Level: hclog.Debug})
		}
	}

	storage := opts.Storage
	if storage == nil {
		storage = tokenstore.NewFileStore(nil, tokenstore.DefaultDir())
	}

	client := opts.HTTPClient
	if client == nil {
		client = NewRestyAdapter(opts.Transport)
	}

	return &APIClient{
		client:  client,
		storage: storage,
		logger:  logger,
		pipeline: Pipeline{
			Request:  []RequestStage{NewAuthInterceptor(storage, logger)},
			Response: []ResponseStage{NewResponseClassifier(logger)},
		},
	}
}

// Storage returns the token store the client reads before every request.
func (ac *APIClient) Storage() tokenstore.TokenStore {
	return ac.storage
}

// Do runs req through the pipeline and returns the classified response.
func (ac *APIClient) Do(ctx context.Context, req *Request) (*Response, error) {
	for _, stage := range ac.pipeline.Request {
		if err := stage.PrepareRequest(ctx, req); err != nil {
			var prepErr *cstmerr.RequestPreparationError
			if !errors.As(err, &prepErr) {
				err = cstmerr.NewRequestPreparationError(fmt.Errorf("%s: %w", stage.Name(), err))
			}
			return nil, err
		}
	}

	opts := &RequestOptions{Headers: req.Headers, QueryParams: req.Query, Body: req.Body}
	var (
		resp *Response
		err  error
	)
	switch req.Method {
	case http.MethodGet:
		resp, err = ac.client.Get(ctx, req.Path, opts)
	case http.MethodPost:
		resp, err = ac.client.Post(ctx, req.Path, opts)
	case http.MethodPut:
		resp, err = ac.client.Put(ctx, req.Path, opts)
	case http.MethodDelete:
		resp, err = ac.client.Delete(ctx, req.Path, opts)
	default:
		return nil, cstmerr.NewRequestPreparationError(fmt.Errorf("unsupported method %q", req.Method))
	}

	for _, stage := range ac.pipeline.Response {
		err = stage.ClassifyResponse(ctx, req, resp, err)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// send issues req and decodes the envelope into ApiMessage[T].
func send[T any](ctx context.Context, ac *APIClient, req *Request) (*SharedModels.Result[T], error) {
	resp, err := ac.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	result := &SharedModels.Result[T]{StatusCode: resp.StatusCode, Headers: resp.Headers}
	if err := json.Unmarshal(resp.Body, &result.Message); err != nil {
		return nil, cstmerr.NewAPIClientError(fmt.Errorf("failed to decode %s %s response: %w", req.Method, req.Path, err))
	}
	return result, nil
}

type queryValuer interface {
	Values() (url.Values, error)
}

func encodeQuery(q queryValuer) (url.Values, error) {
	values, err := q.Values()
	if err != nil {
		return nil, cstmerr.NewRequestPreparationError(fmt.Errorf("encode query: %w", err))
	}
	return values, nil
}

// Login posts credentials and stores the returned token when ok is true.
// An ok envelope without a token is an *cstmerr.APIClientError. On any
// failure the stored token is left as it was.
func (ac *APIClient) Login(ctx context.Context, payload SharedModels.LoginPayload) (*SharedModels.Result[string], error) {
	res, err := send[string](ctx, ac, &Request{
		Method:    http.MethodPost,
		Path:      authPath,
		Body:      payload,
		Sensitive: true,
	})
	if err != nil {
		return nil, err
	}
	if res.Message.Data == "" {
		return nil, cstmerr.NewAPIClientError(errors.New("login response carried no token"))
	}
	if err := ac.storage.Set(ctx, res.Message.Data); err != nil {
		return nil, err
	}
	ac.logger.Debug("login succeeded, token stored")
	return res, nil
}

// Logout clears the stored token locally; the backend is not contacted.
func (ac *APIClient) Logout(ctx context.Context) error {
	return ac.storage.Set(ctx, "")
}

// ListApps fetches a page of apps.
func (ac *APIClient) ListApps(ctx context.Context, q SharedModels.AppQuery) (*SharedModels.Result[SharedModels.Page[App]], error) {
	values, err := encodeQuery(q)
	if err != nil {
		return nil, err
	}
	return send[SharedModels.Page[App]](ctx, ac, &Request{Method: http.MethodGet, Path: appsPath, Query: values})
}

func (ac *APIClient) GetApp(ctx context.Context, id string) (*SharedModels.Result[App], error) {
	return send[App](ctx, ac, &Request{Method: http.MethodGet, Path: appInfoPath, Query: url.Values{"id": {id}}})
}

func (ac *APIClient) CreateApp(ctx context.Context, payload SharedModels.AppPayload) (*SharedModels.Result[App], error) {
	return send[App](ctx, ac, &Request{Method: http.MethodPost, Path: appsPath, Body: payload})
}

// LatestRelease fetches the newest release matching q.
func (ac *APIClient) LatestRelease(ctx context.Context, q SharedModels.AppQueryParam) (*SharedModels.Result[Release], error) {
	values, err := encodeQuery(q)
	if err != nil {
		return nil, err
	}
	return send[Release](ctx, ac, &Request{Method: http.MethodGet, Path: latestReleasePath, Query: values})
}

func (ac *APIClient) ListReleases(ctx context.Context, appID string) (*SharedModels.Result[[]Release], error) {
	return send[[]Release](ctx, ac, &Request{Method: http.MethodGet, Path: releasesPath, Query: url.Values{"id": {appID}}})
}

func (ac *APIClient) PublishRelease(ctx context.Context, payload SharedModels.ReleasePayload) (*SharedModels.Result[Release], error) {
	return send[Release](ctx, ac, &Request{Method: http.MethodPost, Path: releasesPath, Body: payload})
}

// CreateInvitation asks the backend for an invitation code to appID.
func (ac *APIClient) CreateInvitation(ctx context.Context, appID string) (*SharedModels.Result[string], error) {
	return send[string](ctx, ac, &Request{Method: http.MethodGet, Path: invitationPath, Query: url.Values{"appId": {appID}}})
}

// ConfirmInvitation redeems an invitation code and returns the joined app.
func (ac *APIClient) ConfirmInvitation(ctx context.Context, payload SharedModels.InvitationPayload) (*SharedModels.Result[App], error) {
	return send[App](ctx, ac, &Request{Method: http.MethodPost, Path: invitationPath, Body: payload})
}

func (ac *APIClient) ListArticles(ctx context.Context, q SharedModels.ArticleQuery) (*SharedModels.Result[SharedModels.Page[Article]], error) {
	values, err := encodeQuery(q)
	if err != nil {
		return nil, err
	}
	return send[SharedModels.Page[Article]](ctx, ac, &Request{Method: http.MethodGet, Path: articlesPath, Query: values})
}

func (ac *APIClient) GetArticle(ctx context.Context, id string) (*SharedModels.Result[Article], error) {
	return send[Article](ctx, ac, &Request{Method: http.MethodGet, Path: articlePath(id)})
}

func (ac *APIClient) CreateArticle(ctx context.Context, payload SharedModels.ArticlePayload) (*SharedModels.Result[Article], error) {
	return send[Article](ctx, ac, &Request{Method: http.MethodPost, Path: articlesPath, Body: payload})
}

func (ac *APIClient) UpdateArticle(ctx context.Context, id string, payload SharedModels.ArticlePayload) (*SharedModels.Result[Article], error) {
	return send[Article](ctx, ac, &Request{Method: http.MethodPut, Path: articlePath(id), Body: payload})
}

// DeleteArticle removes an article. The envelope data is ignored.
func (ac *APIClient) DeleteArticle(ctx context.Context, id string) (*SharedModels.Result[any], error) {
	return send[any](ctx, ac, &Request{Method: http.MethodDelete, Path: articlePath(id)})
}

func (ac *APIClient) ListTags(ctx context.Context) (*SharedModels.Result[[]Tag], error) {
	return send[[]Tag](ctx, ac, &Request{Method: http.MethodGet, Path: tagsPath})
}

func articlePath(id string) string {
	return articlesPath + "/" + url.PathEscape(id)
}
