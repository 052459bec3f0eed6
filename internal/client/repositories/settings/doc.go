// Package settings persists client state in the local SQLite store: a small
// key/value repository and, on top of it, the TokenStore that keeps the
// bearer token across restarts.
package settings
