package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted indicates the driver stopped before any attempt was accepted.
	ErrExhausted = errors.New("generator: attempts exhausted")

	// ErrUnknownKind indicates a kind that is not registered.
	ErrUnknownKind = errors.New("generator: unknown problem kind")

	// ErrDuplicateKind indicates a second registration under the same kind.
	ErrDuplicateKind = errors.New("generator: duplicate problem kind")

	// ErrRootCollision indicates a computed root equal to the forced double root.
	ErrRootCollision = errors.New("generator: root equals the double root")

	// ErrCommonFactor indicates numerator and denominator share a factor.
	ErrCommonFactor = errors.New("generator: numerator and denominator share a factor")

	// ErrNoCandidates indicates an empty double-root candidate set.
	ErrNoCandidates = errors.New("generator: no double-root candidates")

	// ErrBadCount indicates a batch size below one.
	ErrBadCount = errors.New("generator: count must be positive")
)

// ExhaustedError reports a driver run that ended without an accepted attempt,
// either because every attempt was rejected or because Cause (a context
// error) stopped the loop.
type ExhaustedError struct {
	Kind       string
	Attempts   int
	LastReason string
	Cause      error
}

func (e *ExhaustedError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "attempt"
	}
	msg := fmt.Sprintf("generator: %s exhausted after %d attempts", kind, e.Attempts)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	} else if e.LastReason != "" {
		msg += " (last: " + e.LastReason + ")"
	}
	return msg
}

// Unwrap exposes ErrExhausted and, when set, the cause.
func (e *ExhaustedError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrExhausted, e.Cause}
	}
	return []error{ErrExhausted}
}
