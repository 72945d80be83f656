package symbolic

import "errors"

var (
	// ErrZeroDivisor indicates a division by zero, a zero polynomial or a zero surd.
	ErrZeroDivisor = errors.New("symbolic: division by zero")
	// ErrNotPolynomial indicates an expression that has no polynomial form in the variable.
	ErrNotPolynomial = errors.New("symbolic: expression is not a polynomial")
	// ErrMixedRadicand indicates arithmetic between surds over different radicands.
	ErrMixedRadicand = errors.New("symbolic: surds over different radicands")
	// ErrUnbound indicates a symbol without a value during evaluation.
	ErrUnbound = errors.New("symbolic: unbound symbol")
)
