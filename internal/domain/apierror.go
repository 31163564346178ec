package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the uniform failure shape every gateway call resolves
// to. StatusCode 0 means the request never produced a response
// (transport failure).
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// ErrorMessage extracts the human-readable message from a gateway
// failure, falling back to the given generic message.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsUnauthorized reports whether err is a remote rejection with an
// unauthorized status.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
