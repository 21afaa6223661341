// Package coxmat provides the structural (Coxeter) matrix type used by
// the numbers-game engine.
//
// A structural matrix is a square, symmetric integer matrix with 1s on
// the diagonal. Off-diagonal entries encode the braid relation between
// two generators:
//
//   - 2  — the generators commute (no edge)
//   - 3  — an edge with a length-3 braid relation
//   - ≤−1 — an edge with no braid relation (the locally simply-laced
//     encoding of an infinite bond)
//   - >3 — a braid relation longer than the simply-laced restriction
//     supports; representable, but rejected when such a row is fired
//
// Entry 0 is not a structural-matrix value and is rejected at
// construction, as are non-square, asymmetric, or bad-diagonal inputs.
// Matrices are immutable once built; New deep-copies its input.
package coxmat
