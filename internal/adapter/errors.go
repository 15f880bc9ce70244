package adapter

import (
	"errors"
	"fmt"
)

// RequestError describes a failed API request: the HTTP status (zero when
// the request never reached the server) and the human-readable message
// taken from the response's "message" field, or the HTTP status text when
// the body carries none.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return e.Message
}

// ExtractMessage returns the user-facing message carried by err, or
// fallback when err carries none. It unwraps [RequestError] values
// produced by the HTTP adapter; transport-level failures (refused
// connection, DNS, timeout) have no server message and always map to
// fallback.
func ExtractMessage(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
