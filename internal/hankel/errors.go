package hankel

import "errors"

var (
	ErrNonPositiveRadius = errors.New("hankel: radius must be positive and finite")
	ErrShapeMismatch     = errors.New("hankel: kernel result does not match lambda length")
	ErrUnknownFilter     = errors.New("hankel: unknown filter")
	ErrNoWeights         = errors.New("hankel: filter has no weights for this order")
)
