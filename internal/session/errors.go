// ABOUTME: User-facing authentication errors
// ABOUTME: Maps backend rejections and transport failures to display messages

package session

import (
	"errors"
	"net/http"

	"github.com/wayfarerhq/wayfarer-cli/internal/api"
)

// AuthError is an authentication failure with a message fit for display.
type AuthError struct {
	Message string
	Err     error // underlying cause, if any
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// authErrorFrom maps a failed API call to an AuthError. Server detail text
// wins; a detail-less 401 reads as bad credentials; everything else,
// transport failures included, falls back to the operation's generic message.
func authErrorFrom(err error, fallback string) *AuthError {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return &AuthError{Message: apiErr.Detail, Err: err}
		}
		if apiErr.StatusCode == http.StatusUnauthorized {
			return &AuthError{Message: "Invalid credentials", Err: err}
		}
	}
	return &AuthError{Message: fallback, Err: err}
}
