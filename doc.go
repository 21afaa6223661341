// Package coxeter is a small playground for combinatorics of Coxeter
// graphs — from the structural matrix up to the chambers version of the
// numbers game and hyperbolic-model coordinate conversions.
//
// 🚀 What is coxeter?
//
//	A deterministic, pure-Go library that brings together:
//		• Structural matrices: validated Coxeter matrices over exact integers
//		• Numbers game: node firing & firing sequences (chambers version,
//		  locally simply-laced systems)
//		• Hyperbolic models: hyperboloid checks, Minkowski & Klein-ball
//		  coordinate conversions
//
// ✨ Why choose coxeter?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact arithmetic – the game engine never touches floating point
//   - Pure Go – no cgo, deterministic results, safe for parallel use
//   - Fail-fast – sentinel errors for every malformed input, matched via errors.Is
//
// Under the hood, everything is organized under three subpackages:
//
//	coxmat/     — structural (Coxeter) matrix type & construction-time validation
//	numgame/    — the numbers-game engine: FireNode & FireSequence
//	hyperbolic/ — stateless hyperbolic-space coordinate transforms
//
// Quick ASCII example:
//
//	    0───1───2───3
//
//	an A₄ chain: consecutive generators braid (entry 3), the rest commute.
//
// A tiny CLI, coxfire, runs game files described in YAML; see cmd/coxfire
// and the runnable demos under examples/.
//
//	go get github.com/katalvlaran/coxeter
package coxeter
