package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/blogsapp/internal/common"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

// TokenSource is the persisted bearer token as seen by the transport.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

// authTransport attaches credentials to outbound requests and handles 401
// responses: the persisted token is cleared and onUnauthorized runs, once
// per response. The response itself is passed through unchanged.
type authTransport struct {
	base           http.RoundTripper
	tokens         TokenSource
	onUnauthorized func(ctx context.Context)
	logger         logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, err := t.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentials, err)
	}

	out := req.Clone(ctx)
	if token != "" {
		out.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}
	requestID := uuid.NewString()
	out.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	t.logger.Debug(ctx, "api call",
		"method", out.Method,
		"path", out.URL.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
	)

	if resp.StatusCode == http.StatusUnauthorized {
		t.expire(ctx, requestID)
	}
	return resp, nil
}

func (t *authTransport) expire(ctx context.Context, requestID string) {
	if err := t.tokens.ClearToken(ctx); err != nil {
		t.logger.Error(ctx, "clear token after 401", "request_id", requestID, "error", err)
	}
	t.logger.Warn(ctx, "session expired", "request_id", requestID)

	if t.onUnauthorized != nil {
		t.onUnauthorized(ctx)
	}
}
