// Package numgame_test exercises the firing engine: the transition rule,
// the sequence fold, and the strict sentinel errors for every malformed
// input shape.
package numgame_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coxeter/coxmat"
	"github.com/katalvlaran/coxeter/numgame"
)

// mustMatrix builds a matrix or fails the test immediately.
func mustMatrix(t *testing.T, entries [][]int) *coxmat.Matrix {
	t.Helper()
	m, err := coxmat.New(entries)
	require.NoError(t, err)

	return m
}

// allThrees returns the rank-4 matrix with 3 everywhere off the diagonal.
func allThrees(t *testing.T) *coxmat.Matrix {
	t.Helper()

	return mustMatrix(t, [][]int{
		{1, 3, 3, 3},
		{3, 1, 3, 3},
		{3, 3, 1, 3},
		{3, 3, 3, 1},
	})
}

// TestFireNode_AllThrees checks the reference scenario:
// firing node 2 on (1,1,1,1) yields (2,2,-1,2).
func TestFireNode_AllThrees(t *testing.T) {
	m := allThrees(t)
	next, err := numgame.FireNode(m, 2, numgame.Position{1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, numgame.Position{2, 2, -1, 2}, next)
}

// TestFireNode_NegatesFiredCoordinate verifies that the fired coordinate
// always flips sign, regardless of the other entries in the row.
func TestFireNode_NegatesFiredCoordinate(t *testing.T) {
	cases := []struct {
		name    string
		entries [][]int
		pos     numgame.Position
	}{
		{"Commuting", [][]int{{1, 2}, {2, 1}}, numgame.Position{5, 7}},
		{"Braided", [][]int{{1, 3}, {3, 1}}, numgame.Position{-4, 9}},
		{"InfiniteBond", [][]int{{1, -1}, {-1, 1}}, numgame.Position{3, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMatrix(t, tc.entries)
			for fired := 0; fired < m.Rank(); fired++ {
				next, err := numgame.FireNode(m, fired, tc.pos)
				require.NoError(t, err)
				require.Equal(t, -tc.pos[fired], next[fired],
					"fired coordinate %d must be negated", fired)
			}
		})
	}
}

// TestFireNode_CommutingLeavesNeighborsAlone checks that entry 2 means
// no interaction.
func TestFireNode_CommutingLeavesNeighborsAlone(t *testing.T) {
	m := mustMatrix(t, [][]int{
		{1, 2, 2},
		{2, 1, 2},
		{2, 2, 1},
	})
	next, err := numgame.FireNode(m, 1, numgame.Position{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, numgame.Position{4, -5, 6}, next)
}

// TestFireNode_InfiniteBondDoubles checks that an entry ≤ −1 adds twice
// the fired coordinate to the neighbor.
func TestFireNode_InfiniteBondDoubles(t *testing.T) {
	m := mustMatrix(t, [][]int{
		{1, -1},
		{-1, 1},
	})
	next, err := numgame.FireNode(m, 0, numgame.Position{1, 2})
	require.NoError(t, err)
	require.Equal(t, numgame.Position{-1, 4}, next)

	// Values below −1 behave identically to −1.
	m = mustMatrix(t, [][]int{
		{1, -5},
		{-5, 1},
	})
	next, err = numgame.FireNode(m, 0, numgame.Position{1, 2})
	require.NoError(t, err)
	require.Equal(t, numgame.Position{-1, 4}, next)
}

// TestFireNode_InputUntouched verifies that the caller's position is
// never mutated in place.
func TestFireNode_InputUntouched(t *testing.T) {
	m := allThrees(t)
	pos := numgame.Position{1, 1, 1, 1}
	_, err := numgame.FireNode(m, 0, pos)
	require.NoError(t, err)
	require.Equal(t, numgame.Position{1, 1, 1, 1}, pos)
}

// TestFireNode_Rejections covers every input-domain failure of FireNode.
func TestFireNode_Rejections(t *testing.T) {
	m := allThrees(t)
	cases := []struct {
		name  string
		fired int
		pos   numgame.Position
		want  error
	}{
		{"NegativeNode", -1, numgame.Position{1, 1, 1, 1}, numgame.ErrNodeNotInGraph},
		{"NodeAtRank", 4, numgame.Position{1, 1, 1, 1}, numgame.ErrNodeNotInGraph},
		{"NodePastRank", 99, numgame.Position{1, 1, 1, 1}, numgame.ErrNodeNotInGraph},
		{"ShortPosition", 0, numgame.Position{1, 1, 1}, numgame.ErrPositionSize},
		{"LongPosition", 0, numgame.Position{1, 1, 1, 1, 1}, numgame.ErrPositionSize},
		{"NilPosition", 0, nil, numgame.ErrPositionSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := numgame.FireNode(m, tc.fired, tc.pos)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, next, "no partial result on error")
		})
	}
}

// TestFireNode_NilMatrix checks the nil-matrix guard.
func TestFireNode_NilMatrix(t *testing.T) {
	_, err := numgame.FireNode(nil, 0, numgame.Position{1})
	require.ErrorIs(t, err, numgame.ErrNilMatrix)
}

// TestFireNode_NotSimplyLaced verifies that an entry > 3 fails only when
// it sits in the fired node's row.
func TestFireNode_NotSimplyLaced(t *testing.T) {
	// Nodes 0 and 1 share a length-4 braid relation; node 2 does not.
	m := mustMatrix(t, [][]int{
		{1, 4, 2},
		{4, 1, 3},
		{2, 3, 1},
	})

	for _, fired := range []int{0, 1} {
		_, err := numgame.FireNode(m, fired, numgame.Position{1, 1, 1})
		require.ErrorIs(t, err, numgame.ErrNotSimplyLaced, "row %d carries the bad entry", fired)
	}

	// Row 2 is clean, so firing node 2 succeeds.
	next, err := numgame.FireNode(m, 2, numgame.Position{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, numgame.Position{1, 2, -1}, next)
}

// TestFireSequence_Identity checks the empty sequence: the position is
// returned unchanged, and the result does not alias the input.
func TestFireSequence_Identity(t *testing.T) {
	m := allThrees(t)
	pos := numgame.Position{1, 1, 1, 1}
	got, err := numgame.FireSequence(m, numgame.Sequence(), pos)
	require.NoError(t, err)
	require.Equal(t, pos, got)

	got[0] = 42
	require.Equal(t, int64(1), pos[0], "identity result must not alias the input")
}

// TestFireSequence_SingleNodeEquivalence checks all three spellings of
// one firing agree: FireNode, Sequence(n) and Node(n).
func TestFireSequence_SingleNodeEquivalence(t *testing.T) {
	m := allThrees(t)
	pos := numgame.Position{1, 1, 1, 1}

	direct, err := numgame.FireNode(m, 2, pos)
	require.NoError(t, err)

	viaSeq, err := numgame.FireSequence(m, numgame.Sequence(2), pos)
	require.NoError(t, err)
	require.Equal(t, direct, viaSeq)

	viaNode, err := numgame.FireSequence(m, numgame.Node(2), pos)
	require.NoError(t, err)
	require.Equal(t, direct, viaNode)
}

// TestFireSequence_Fold checks the reference multi-step scenario and the
// fold-consistency property against manual iteration.
func TestFireSequence_Fold(t *testing.T) {
	m := allThrees(t)
	start := numgame.Position{1, 1, 1, 1}

	got, err := numgame.FireSequence(m, numgame.Sequence(0, 2, 3), start)
	require.NoError(t, err)
	require.Equal(t, numgame.Position{5, 8, 2, -4}, got)

	// Manual left fold must agree step by step.
	cur := start
	for _, n := range []int{0, 2, 3} {
		cur, err = numgame.FireNode(m, n, cur)
		require.NoError(t, err)
	}
	require.Equal(t, cur, got)
}

// TestFireSequence_ErrorAborts checks that an inner failure propagates
// unchanged and yields no partial result.
func TestFireSequence_ErrorAborts(t *testing.T) {
	m := allThrees(t)
	got, err := numgame.FireSequence(m, numgame.Sequence(0, 99, 3), numgame.Position{1, 1, 1, 1})
	require.ErrorIs(t, err, numgame.ErrNodeNotInGraph)
	require.Nil(t, got)
}

// TestFireSequence_InvalidFiring checks that the zero Firing is rejected.
func TestFireSequence_InvalidFiring(t *testing.T) {
	m := allThrees(t)
	var f numgame.Firing
	require.False(t, f.Valid())

	_, err := numgame.FireSequence(m, f, numgame.Position{1, 1, 1, 1})
	require.ErrorIs(t, err, numgame.ErrInvalidFiring)
}

// TestFiring_Nodes checks the node-list view of both variants.
func TestFiring_Nodes(t *testing.T) {
	require.Equal(t, []int{3}, numgame.Node(3).Nodes())
	require.Equal(t, []int{0, 2, 3}, numgame.Sequence(0, 2, 3).Nodes())
	require.Empty(t, numgame.Sequence().Nodes())
	require.Nil(t, numgame.Firing{}.Nodes())
}

// TestPosition_Clone checks independence of clones.
func TestPosition_Clone(t *testing.T) {
	p := numgame.Position{1, 2, 3}
	q := p.Clone()
	q[0] = 9
	if p[0] != 1 {
		t.Fatalf("Clone aliases the original: %v", p)
	}
	if numgame.Position(nil).Clone() != nil {
		t.Fatal("nil position must clone to nil")
	}
}

// TestFireSequence_ForwardsConstructionSentinels checks that coxmat
// sentinels stay matchable through a full run.
func TestFireSequence_ForwardsConstructionSentinels(t *testing.T) {
	_, err := coxmat.New([][]int{{1, 0}, {0, 1}})
	require.True(t, errors.Is(err, coxmat.ErrNotCoxeter))
}
