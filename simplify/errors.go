package simplify

import "errors"

var (
	// ErrInvalidTree indicates a rewrite produced a tree in which some
	// node is reachable twice.
	ErrInvalidTree = errors.New("simplify: manipulated tree is not valid")
	// ErrCycleDetected indicates the canonical text of a rewritten tree
	// has been seen before during this run.
	ErrCycleDetected = errors.New("simplify: expression repeated")
	// ErrSizeExceeded indicates a rewritten tree outgrew the configured
	// node-count limit.
	ErrSizeExceeded = errors.New("simplify: tree size exceeded limit")
)
