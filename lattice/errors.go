package lattice

import "errors"

var (
	// ErrBadDenominator indicates a denominator that is not positive.
	ErrBadDenominator = errors.New("lattice: denominator must be positive")
	// ErrEmptyRange indicates bounds with lo > hi or a lattice without values.
	ErrEmptyRange = errors.New("lattice: empty range")
	// ErrNoDenominators indicates a Spec without any lattice.
	ErrNoDenominators = errors.New("lattice: no denominators")
)
