package numgame

import "errors"

var (
	// ErrNilMatrix indicates a nil structural matrix was supplied.
	ErrNilMatrix = errors.New("numgame: structural matrix is nil")

	// ErrNodeNotInGraph indicates the fired node is not in the vertex set,
	// i.e. the index lies outside [0, rank).
	ErrNodeNotInGraph = errors.New("numgame: fired node not in vertex set")

	// ErrPositionSize indicates len(position) differs from the matrix rank.
	ErrPositionSize = errors.New("numgame: position size mismatch")

	// ErrNotSimplyLaced indicates a braid relation longer than 3 in the
	// fired node's row; such systems are outside this implementation.
	ErrNotSimplyLaced = errors.New("numgame: Coxeter group is not locally simply-laced")

	// ErrInvalidFiring indicates a Firing value that is neither a single
	// node nor a sequence of nodes (the zero Firing).
	ErrInvalidFiring = errors.New("numgame: fired sequence is not a valid sequence")
)
