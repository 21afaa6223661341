// Package numgame implements the numbers game on Coxeter graphs
// (chambers version), restricted to locally simply-laced Coxeter
// systems.
//
// 🚀 What is the numbers game?
//
//	A discrete state-transition game played on the generators of a
//	Coxeter system. A position assigns one integer to each generator;
//	firing a node negates its coordinate and pushes its value onto the
//	neighbors, as dictated by the structural matrix:
//	  • entry 1 or 2 — no interaction
//	  • entry 3      — neighbor gains the fired coordinate
//	  • entry ≤ −1   — neighbor gains twice the fired coordinate
//	  • entry > 3    — rejected: the braid relation is too long for the
//	    simply-laced restriction
//
// ✨ Key properties:
//   - Exact integer arithmetic — no floating point, no tolerance games
//   - Pure functions — inputs are never mutated, every firing returns a
//     fresh position, calls are safe to run in parallel
//   - Fail-fast — invalid nodes, mismatched positions and unsupported
//     braid lengths surface as sentinel errors, matched via errors.Is
//
// ⚙️ Usage:
//
//	m, _ := coxmat.New([][]int{
//		{1, 3, 2},
//		{3, 1, 3},
//		{2, 3, 1},
//	})
//	next, err := numgame.FireNode(m, 1, numgame.Position{0, 1, 0})
//	// next == Position{1, -1, 1}
//
//	final, err := numgame.FireSequence(m, numgame.Sequence(0, 2, 1), start)
//
// FireSequence is a thin left fold over FireNode; an empty Sequence()
// is the identity and a zero Firing value is rejected.
//
// See example_test.go for worked scenarios.
package numgame
