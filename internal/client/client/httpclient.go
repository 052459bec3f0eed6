package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

type options struct {
	base           http.RoundTripper
	onUnauthorized func(ctx context.Context)
	logger         logging.Logger
}

type Option func(*options)

// WithTransport replaces the underlying round tripper (http.DefaultTransport).
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

// WithUnauthorizedHandler registers fn to run after a 401 response has
// cleared the persisted token.
func WithUnauthorizedHandler(fn func(ctx context.Context)) Option {
	return func(o *options) { o.onUnauthorized = fn }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the API rooted at baseURL, reading the
// bearer token from tokens on every request.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q is not absolute", baseURL)
	}

	o := options{base: http.DefaultTransport, logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	transport := &authTransport{
		base:           o.base,
		tokens:         tokens,
		onUnauthorized: o.onUnauthorized,
		logger:         o.logger,
	}

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Transport: transport},
		logger:  o.logger,
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (string, error) {
	return c.requestToken(ctx, req, c.endpoint(nil, "api", "auth", "register"))
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (string, error) {
	return c.requestToken(ctx, req, c.endpoint(nil, "api", "auth", "login"))
}

func (c *HTTPClient) requestToken(ctx context.Context, in any, u *url.URL) (string, error) {
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, u, in, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrNoToken
	}
	return resp.Token, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "api", "auth", "profile"), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "api", "posts"), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id models.ID) (*models.Post, error) {
	var p models.Post
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "api", "posts", id.String()), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, form models.PostForm) error {
	return c.sendPostForm(ctx, http.MethodPost, c.endpoint(nil, "api", "posts"), form)
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id models.ID, form models.PostForm) error {
	return c.sendPostForm(ctx, http.MethodPut, c.endpoint(nil, "api", "posts", id.String()), form)
}

func (c *HTTPClient) sendPostForm(ctx context.Context, method string, u *url.URL, form models.PostForm) error {
	body, contentType, err := encodePostForm(form)
	if err != nil {
		return err
	}
	return c.do(ctx, method, u, body, contentType, nil)
}

func (c *HTTPClient) DeletePost(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "api", "posts", id.String()), nil, "", nil)
}

func (c *HTTPClient) ListUserPosts(ctx context.Context, userID models.ID) ([]models.Post, error) {
	var posts []models.Post
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "api", "users", userID.String(), "posts"), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) ListComments(ctx context.Context, postID models.ID) ([]models.Comment, error) {
	var comments []models.Comment
	u := c.endpoint(url.Values{"postId": {postID.String()}}, "api", "comments")
	if err := c.doJSON(ctx, http.MethodGet, u, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, nc models.NewComment) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint(nil, "api", "comments"), nc, nil)
}

func (c *HTTPClient) DeleteComment(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "api", "comments", id.String()), nil, "", nil)
}

// doJSON sends in (when non-nil) as a JSON body and decodes the response into out.
func (c *HTTPClient) doJSON(ctx context.Context, method string, u *url.URL, in, out any) error {
	var (
		body        io.Reader
		contentType string
	)
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}
	return c.do(ctx, method, u, body, contentType, out)
}

// endpoint joins segments onto the base URL and sets query, if any.
func (c *HTTPClient) endpoint(query url.Values, segments ...string) *url.URL {
	u := c.baseURL.JoinPath(segments...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u
}

// do performs one request against u. A nil out discards the response body.
func (c *HTTPClient) do(ctx context.Context, method string, u *url.URL, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, ErrCredentials) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, u.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := decodeError(resp)
		c.logger.Debug(ctx, "api error", "method", method, "path", u.Path, "error", err)
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrBadResponse, method, u.Path, err)
	}
	return nil
}
