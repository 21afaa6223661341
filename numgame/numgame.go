// Package numgame - node firing and sequence dispatch.
//
// This file contains the two engine operations:
//
//   - FireNode: one firing transition, keyed off one row of the
//     structural matrix.
//   - FireSequence: a left fold of FireNode over a Firing plan.
//
// Design principles:
//   - Deterministic, side-effect free: inputs are read-only, every call
//     allocates a fresh result position.
//   - Strict sentinels: only errors from errors.go (plus
//     coxmat.ErrNotCoxeter for the unreachable malformed-entry branch);
//     no fmt.Errorf where a sentinel suffices.
//   - Exact arithmetic: int64 coordinates, integer matrix entries, no
//     epsilon anywhere.
package numgame

import (
	"github.com/katalvlaran/coxeter/coxmat"
)

// FireNode computes the position reached from pos by firing the node
// fired, under the structural matrix m.
//
// Contract:
//   - m must be non-nil (ErrNilMatrix).
//   - fired must lie in [0, m.Rank()) (ErrNodeNotInGraph).
//   - len(pos) must equal m.Rank() (ErrPositionSize).
//
// Transition rule, over every entry e of row fired:
//   - e ∈ {1, 2}: no interaction (covers the self-entry 1 and
//     non-adjacent nodes).
//   - e == 3: the neighbor gains pos[fired].
//   - e ≤ −1: the neighbor gains 2·pos[fired] (infinite bond).
//   - e > 3: ErrNotSimplyLaced — the braid relation is too long.
//
// After the row pass the fired coordinate is overwritten with its
// negation, so the self-entry rule never interferes with it.
//
// pos is never mutated; on error no partial result is returned.
// Complexity: O(rank) time and memory.
func FireNode(m *coxmat.Matrix, fired int, pos Position) (Position, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rank := m.Rank()
	if fired < 0 || fired >= rank {
		return nil, ErrNodeNotInGraph
	}
	if len(pos) != rank {
		return nil, ErrPositionSize
	}

	row, err := m.Row(fired)
	if err != nil {
		// fired was range-checked above; keep the guard for totality.
		return nil, ErrNodeNotInGraph
	}

	next := pos.Clone()
	for i, e := range row {
		switch {
		case e == 1 || e == 2:
			// no interaction
		case e == 3:
			next[i] += pos[fired]
		case e <= -1:
			next[i] += 2 * pos[fired]
		case e > 3:
			return nil, ErrNotSimplyLaced
		default:
			// Unreachable for matrices built via coxmat.New; kept so the
			// switch is total over the integer entry domain.
			return nil, coxmat.ErrNotCoxeter
		}
	}
	next[fired] = -pos[fired]

	return next, nil
}

// FireSequence applies a Firing plan to pos and returns the final
// position.
//
// Dispatch:
//   - Node(i): one FireNode call.
//   - Sequence(): identity — a fresh copy of pos, explicitly not an error.
//   - Sequence(n): one firing of n.
//   - Sequence(n1, n2, ...): left fold, threading each result into the
//     next FireNode call.
//   - the zero Firing: ErrInvalidFiring.
//
// Any error from an inner FireNode propagates unchanged and aborts the
// fold; no partial result is returned.
// Complexity: O(rank · steps) time, O(rank) memory per step.
func FireSequence(m *coxmat.Matrix, f Firing, pos Position) (Position, error) {
	switch f.kind {
	case firingNode:
		return FireNode(m, f.node, pos)
	case firingSequence:
		if len(f.seq) == 0 {
			// Identity, but still a fresh slice: results never alias inputs.
			return pos.Clone(), nil
		}
		cur := pos
		var err error
		for _, n := range f.seq {
			cur, err = FireNode(m, n, cur)
			if err != nil {
				return nil, err
			}
		}

		return cur, nil
	default:
		return nil, ErrInvalidFiring
	}
}
