package geometry

import "errors"

// Sentinel errors returned by the fallible constructors. Callers translate
// them into their own error model with errors.Is.
var (
	ErrNonFiniteOrdinate = errors.New("geometry: ordinate is NaN or infinite")
	ErrTooFewPoints      = errors.New("geometry: ring has too few distinct points")
	ErrRingNotClosed     = errors.New("geometry: ring is not closed")
	ErrMissingExterior   = errors.New("geometry: polygon has no exterior ring")
)
