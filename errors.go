package gamath

import "errors"

var (
	// ErrAmbiguousInnerProduct indicates an inner product with three or
	// more operands of nonzero grade. There is no reading of such a
	// product as a binary contraction, so grade computation fails.
	ErrAmbiguousInnerProduct = errors.New("gamath: ambiguous inner product")
)
