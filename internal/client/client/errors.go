package client

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-OK response from the API.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed: %d %s", e.Status, http.StatusText(e.Status))
}

// Detail returns the server-supplied message of err, or "" when err is not
// an *APIError or carries none.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
