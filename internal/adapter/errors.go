package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport means no response was obtained: connection refused, DNS
	// failure, timeout or a cancelled context.
	ErrTransport = errors.New("transport failure")
	// ErrServerRejected means the service answered with a non-2xx status.
	ErrServerRejected = errors.New("server rejected request")
	// ErrNotFound is additionally matched for 404 and 410 responses.
	ErrNotFound = errors.New("not found")
	// ErrMalformedResponse means a 2xx response carried no usable payload.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is returned for every non-2xx response. It matches
// [ErrServerRejected], and [ErrNotFound] for 404 and 410.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() []error {
	switch e.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return []error{ErrServerRejected, ErrNotFound}
	default:
		return []error{ErrServerRejected}
	}
}
