package solve

import (
	"errors"
	"fmt"
)

// ErrDegenerate marks a violated structural precondition. Every other error
// in this package wraps it, so callers can test a single sentinel.
var ErrDegenerate = errors.New("solve: degenerate input")

var (
	// ErrZeroLeading indicates a quadratic with a = 0.
	ErrZeroLeading = fmt.Errorf("%w: zero leading coefficient", ErrDegenerate)
	// ErrShape indicates a rational function outside the handled degree-3/degree-2 form.
	ErrShape = fmt.Errorf("%w: unexpected rational function shape", ErrDegenerate)
	// ErrNotOblique indicates degrees that do not yield a degree-1 asymptote.
	ErrNotOblique = fmt.Errorf("%w: asymptote is not oblique", ErrDegenerate)
)
