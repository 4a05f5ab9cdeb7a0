// ABOUTME: Typed API errors carrying status code and server detail text
// ABOUTME: Distinguishes backend rejections from transport failures

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the backend. Detail holds the server's
// human-readable explanation when one was provided.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// IsAuthFailure reports whether err is a 401 or 403 rejection.
func IsAuthFailure(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}
