package shipstation

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound is returned when a lookup succeeds at the transport
// level but matches no order. It is deliberately distinct from *APIError:
// callers treat "no such order" and "the request failed" differently.
var ErrOrderNotFound = errors.New("order not found")

// APIError represents a transport- or HTTP-level failure talking to the
// upstream service. StatusCode is zero for connection and decode failures.
type APIError struct {
	// Op names the client operation that failed ("list orders",
	// "add tag", ...).
	Op string

	// StatusCode is the HTTP status, when one was received.
	StatusCode int

	// Err is the underlying cause.
	Err error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("shipstation: %s: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("shipstation: %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means "no such order", as opposed to a
// failed request.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound)
}
