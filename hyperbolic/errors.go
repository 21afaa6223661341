package hyperbolic

import "errors"

var (
	// ErrDimension indicates a vector with fewer than two coordinates;
	// the Minkowski model needs at least one spacelike and one timelike axis.
	ErrDimension = errors.New("hyperbolic: vector needs at least two coordinates")

	// ErrDimensionMismatch indicates operands of incompatible lengths,
	// or a ragged basis.
	ErrDimensionMismatch = errors.New("hyperbolic: dimension mismatch")

	// ErrNotOnUpperSheet indicates a point with non-positive timelike
	// coordinate where the upper sheet of the hyperboloid is required.
	ErrNotOnUpperSheet = errors.New("hyperbolic: point is not on the upper sheet")

	// ErrOutsideBall indicates a Klein-model point with norm ≥ 1.
	ErrOutsideBall = errors.New("hyperbolic: point lies outside the open unit ball")

	// ErrBadEpsilon indicates a negative tolerance.
	ErrBadEpsilon = errors.New("hyperbolic: epsilon must be non-negative")
)
