// Package coxmat: sentinel error set.
// All construction and accessor failures surface as one of these
// package-level sentinels; callers match them via errors.Is. No
// function in this package panics on user input.
package coxmat

import "errors"

var (
	// ErrEmptyMatrix indicates the input has no rows or no columns.
	ErrEmptyMatrix = errors.New("coxmat: matrix must have at least one row and one column")

	// ErrNonSquare indicates a ragged input or a row/column count mismatch.
	ErrNonSquare = errors.New("coxmat: matrix is not square")

	// ErrBadDiagonal indicates a diagonal entry different from 1.
	ErrBadDiagonal = errors.New("coxmat: diagonal entries must equal 1")

	// ErrAsymmetric indicates M[i][j] != M[j][i] for some pair (i, j).
	ErrAsymmetric = errors.New("coxmat: matrix is not symmetric")

	// ErrNotCoxeter indicates an entry outside the structural domain
	// ({1,2,3}, ≤−1, or >3 — for integers that leaves exactly 0).
	ErrNotCoxeter = errors.New("coxmat: matrix is not a valid structural/Coxeter matrix")

	// ErrOutOfRange indicates a row or column index outside [0, rank).
	ErrOutOfRange = errors.New("coxmat: index out of range")
)
