package orbit

import "errors"

// Domain errors for session operations.
var (
	// ErrDegenerateConfig indicates a zero or negative initial
	// separation. The session is still constructed, but starts paused.
	ErrDegenerateConfig = errors.New("orbit: degenerate configuration (separation must be positive)")

	// ErrInvalidState indicates an operation that requires a running
	// session was attempted while paused.
	ErrInvalidState = errors.New("orbit: session is paused")
)
