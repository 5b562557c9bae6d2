package ebird

import (
	"errors"
	"fmt"
	"net/url"
)

// HTTPError reports a non-success status from the observation API.
type HTTPError struct {
	Status int
	Path   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// NetworkError wraps a transport failure (DNS, refused connection, abort).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not valid observation JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid response body: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// newNetworkError strips the url.Error envelope so the message carries the
// underlying cause rather than the full request URL (which includes query
// parameters).
func newNetworkError(err error) *NetworkError {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return &NetworkError{Err: uerr.Err}
	}
	return &NetworkError{Err: err}
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an HTTPError.
func StatusCode(err error) int {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.Status
	}
	return 0
}
