package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRequest      = errors.New("request rejected")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrBadResponse  = errors.New("malformed response")
	ErrNoToken      = errors.New("no token in response")
	ErrCredentials  = errors.New("read credentials")
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// APIError is a non-2xx response. Message is the server's explanation when
// it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	status := fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message == "" {
		return status
	}
	return status + ": " + e.Message
}

func (e *APIError) Unwrap() []error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return []error{ErrUnauthorized}
	case e.StatusCode == http.StatusNotFound:
		return []error{ErrRequest, ErrNotFound}
	case e.StatusCode >= 500:
		return []error{ErrServer}
	default:
		return []error{ErrRequest}
	}
}

// Message returns the server-provided message carried by err, or fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
}

// errorMessage extracts {"message": ...} or {"error": ...}; other bodies are
// used verbatim unless they look like HTML.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Error
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}
