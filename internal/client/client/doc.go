// Package client talks to the blog REST API.
//
// # Overview
//
//  1. Client is the endpoint contract: auth, profile, posts, user posts and
//     comments.
//  2. HTTPClient implements it over net/http. Every request passes through
//     an authenticating RoundTripper that attaches the persisted bearer
//     token and a request id, and reacts to 401 responses by clearing the
//     token and invoking the configured unauthorized handler. This is the
//     only place where an expired session is detected; callers simply see
//     an error matching ErrUnauthorized.
//
// # Error Handling
//
// Failures map onto sentinel errors usable with errors.Is:
//
//   - ErrUnavailable: the server could not be reached.
//   - ErrUnauthorized: 401.
//   - ErrRequest / ErrNotFound: other 4xx; the server message is in *APIError.
//   - ErrServer: 5xx.
//   - ErrBadResponse: a success response that could not be decoded.
//   - ErrNoToken: login or registration succeeded without returning a token.
//
// There are no retries. One call performs exactly one request.
package client
