// Package numgame: domain types for the numbers-game engine.
// This file defines the Position coordinate vector and the Firing
// tagged variant consumed by FireSequence. Sentinel errors live in
// errors.go.
package numgame

// Position assigns one integer coordinate to each generator of the
// Coxeter system; it represents a chamber state of the game. Engine
// operations treat positions as immutable and return fresh slices.
// Coordinates are int64 since repeated firings grow values quickly.
type Position []int64

// Clone returns an independent copy of p. A nil position clones to nil.
// Complexity: O(len(p)).
func (p Position) Clone() Position {
	if p == nil {
		return nil
	}
	out := make(Position, len(p))
	copy(out, p)

	return out
}

// firingKind tags the shape of a Firing value.
type firingKind int

const (
	// firingInvalid is the zero Firing: neither a node nor a sequence.
	firingInvalid firingKind = iota
	// firingNode is a single bare node index.
	firingNode
	// firingSequence is an ordered list of node indices (possibly empty).
	firingSequence
)

// Firing describes what FireSequence should apply: a single bare node
// or an ordered sequence of nodes. The zero Firing is invalid and is
// rejected with ErrInvalidFiring; build values via Node or Sequence.
// Resolving the shape here, once, at the call boundary keeps the
// engine free of runtime type inspection.
type Firing struct {
	kind firingKind
	node int
	seq  []int
}

// Node returns a Firing that applies a single firing of node i,
// equivalent to one FireNode call.
func Node(i int) Firing {
	return Firing{kind: firingNode, node: i}
}

// Sequence returns a Firing that applies nodes left to right.
// Sequence() with no arguments is the valid empty sequence: the
// identity firing, explicitly not an error.
func Sequence(nodes ...int) Firing {
	seq := make([]int, len(nodes))
	copy(seq, nodes)

	return Firing{kind: firingSequence, seq: seq}
}

// Nodes returns the ordered node indices this Firing applies.
// Complexity: O(len).
func (f Firing) Nodes() []int {
	switch f.kind {
	case firingNode:
		return []int{f.node}
	case firingSequence:
		out := make([]int, len(f.seq))
		copy(out, f.seq)

		return out
	default:
		return nil
	}
}

// Valid reports whether f was built via Node or Sequence.
func (f Firing) Valid() bool {
	return f.kind != firingInvalid
}
