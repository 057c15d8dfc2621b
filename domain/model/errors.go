package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationMissing is returned before any network call when no library id is set.
	ErrConfigurationMissing = errors.New("bunny stream is not configured yet")
	// ErrTransport wraps network and timeout failures.
	ErrTransport = errors.New("could not reach bunny stream")
	// ErrMalformedResponse is returned when the body is not a JSON object.
	ErrMalformedResponse = errors.New("unexpected response from bunny stream")
)

// RemoteHTTPError carries a non-200 status from the provider
type RemoteHTTPError struct {
	StatusCode int
}

func (e *RemoteHTTPError) Error() string {
	return fmt.Sprintf("failed to fetch videos from bunny stream: http %d", e.StatusCode)
}

// IsRemoteFailure reports whether err belongs to the remote client failure taxonomy.
func IsRemoteFailure(err error) bool {
	var httpErr *RemoteHTTPError
	return errors.Is(err, ErrConfigurationMissing) ||
		errors.Is(err, ErrTransport) ||
		errors.Is(err, ErrMalformedResponse) ||
		errors.As(err, &httpErr)
}
