package hyperbolic

import "math"

// DefaultEpsilon is the tolerance used by OnHyperboloid when the caller
// passes a zero epsilon. Chosen to absorb accumulated float64 rounding
// across a handful of products and square roots.
const DefaultEpsilon = 1e-9

// LorentzianDot computes the Lorentzian inner product of u and v with
// signature (n, 1), last coordinate timelike.
// Returns ErrDimensionMismatch if lengths differ, ErrDimension if the
// vectors have fewer than two coordinates.
// Complexity: O(n).
func LorentzianDot(u, v []float64) (float64, error) {
	if len(u) != len(v) {
		return 0, ErrDimensionMismatch
	}
	if len(u) < 2 {
		return 0, ErrDimension
	}
	n := len(u) - 1
	var dot float64
	for i := 0; i < n; i++ {
		dot += u[i] * v[i]
	}
	dot -= u[n] * v[n]

	return dot, nil
}

// OnHyperboloid reports whether v lies on the upper sheet of the
// hyperboloid {⟨v,v⟩ = −1, v_n > 0}, within tolerance eps.
// A zero eps selects DefaultEpsilon; a negative eps is ErrBadEpsilon.
// Complexity: O(n).
func OnHyperboloid(v []float64, eps float64) (bool, error) {
	if eps < 0 {
		return false, ErrBadEpsilon
	}
	if eps == 0 {
		eps = DefaultEpsilon
	}
	q, err := LorentzianDot(v, v)
	if err != nil {
		return false, err
	}

	return math.Abs(q+1) <= eps && v[len(v)-1] > 0, nil
}

// ToMinkowski maps coordinates v expressed in the supplied basis into
// ambient Minkowski coordinates: Σ v[k]·basis[k]. Each basis vector is
// one row; all rows must share the same (ambient) length and there must
// be one coordinate per basis vector.
// Returns ErrDimensionMismatch on ragged or mismatched shapes,
// ErrDimension if the ambient dimension is below two.
// Complexity: O(len(v)·dim).
func ToMinkowski(basis [][]float64, v []float64) ([]float64, error) {
	if len(basis) == 0 || len(basis) != len(v) {
		return nil, ErrDimensionMismatch
	}
	dim := len(basis[0])
	if dim < 2 {
		return nil, ErrDimension
	}
	for _, b := range basis {
		if len(b) != dim {
			return nil, ErrDimensionMismatch
		}
	}
	out := make([]float64, dim)
	for k, b := range basis {
		for i := 0; i < dim; i++ {
			out[i] += v[k] * b[i]
		}
	}

	return out, nil
}

// MinkowskiToKlein centrally projects a Minkowski-model point onto the
// Klein ball: k[i] = v[i]/v[n]. Requires the upper sheet (v_n > 0);
// returns ErrNotOnUpperSheet otherwise.
// Complexity: O(n).
func MinkowskiToKlein(v []float64) ([]float64, error) {
	if len(v) < 2 {
		return nil, ErrDimension
	}
	n := len(v) - 1
	if v[n] <= 0 {
		return nil, ErrNotOnUpperSheet
	}
	k := make([]float64, n)
	for i := 0; i < n; i++ {
		k[i] = v[i] / v[n]
	}

	return k, nil
}

// KleinToMinkowski lifts a Klein-ball point onto the upper sheet of the
// hyperboloid: (k, 1)/sqrt(1 − |k|²). The input must lie strictly
// inside the open unit ball; returns ErrOutsideBall otherwise.
// Complexity: O(n).
func KleinToMinkowski(k []float64) ([]float64, error) {
	if len(k) == 0 {
		return nil, ErrDimension
	}
	var norm2 float64
	for _, c := range k {
		norm2 += c * c
	}
	if norm2 >= 1 {
		return nil, ErrOutsideBall
	}
	scale := 1 / math.Sqrt(1-norm2)
	v := make([]float64, len(k)+1)
	for i, c := range k {
		v[i] = c * scale
	}
	v[len(k)] = scale

	return v, nil
}
