package idempotency

import "errors"

// ConflictError reports that the provider rejected a call because its
// idempotency key was already used with different parameters. The provider
// boundary produces it so callers match one typed variant instead of probing
// provider error shapes.
type ConflictError struct {
	// Key is the idempotency key the rejected call was sent with.
	Key     string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "idempotency key conflict: " + e.Key
}

// IsConflict reports whether err is, or wraps, an idempotency key conflict.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}

// KeyFromError recovers the idempotency key carried by a conflict error.
// The second return is false when err carries no key.
func KeyFromError(err error) (string, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) && conflict.Key != "" {
		return conflict.Key, true
	}
	return "", false
}
