// Package common contains constants and small helpers shared by the client
// packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerScheme prefixes the token in the Authorization header.
	BearerScheme = "Bearer"
	// RequestIDHeaderName tags every request so client and server logs can be joined.
	RequestIDHeaderName = "X-Request-ID"
)
