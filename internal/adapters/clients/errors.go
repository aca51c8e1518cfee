// Package clients provides the instrumented HTTP client used to call the
// quote service.
package clients

import "errors"

// Client errors are transport failures. The acl package translates them
// into domain errors.
var (
	// ErrCircuitOpen is returned while the circuit breaker blocks requests.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is used up.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
