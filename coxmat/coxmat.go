package coxmat

// Matrix is an immutable structural (Coxeter) matrix over exact
// integers. The zero value has rank 0 and is unusable; build instances
// via New. Storage is unexported so every reachable Matrix satisfies
// the construction-time invariants (square, symmetric, unit diagonal,
// no zero entries).
type Matrix struct {
	rank int
	rows [][]int
}

// New constructs a Matrix from entries, validating the structural
// invariants and deep-copying the input so later caller mutation cannot
// leak in.
//
// Validation order: ErrEmptyMatrix, ErrNonSquare (ragged rows count),
// ErrBadDiagonal, ErrAsymmetric, ErrNotCoxeter (entry 0).
// Complexity: O(rank²) time and memory.
func New(entries [][]int) (*Matrix, error) {
	if len(entries) == 0 || len(entries[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := len(entries)
	for _, row := range entries {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	for i := 0; i < n; i++ {
		if entries[i][i] != 1 {
			return nil, ErrBadDiagonal
		}
	}
	// Upper triangle only; the diagonal was checked above.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if entries[i][j] != entries[j][i] {
				return nil, ErrAsymmetric
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !validEntry(entries[i][j]) {
				return nil, ErrNotCoxeter
			}
		}
	}
	// Deep copy to guarantee immutability.
	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]int, n)
		copy(rows[i], entries[i])
	}

	return &Matrix{rank: n, rows: rows}, nil
}

// validEntry reports whether e lies in the structural domain:
// {1, 2, 3}, any value ≤ −1, or any value > 3. Over the integers the
// only excluded value is 0.
func validEntry(e int) bool {
	return e != 0
}

// Rank returns the number of generators (rows) of the matrix.
// Complexity: O(1).
func (m *Matrix) Rank() int {
	if m == nil {
		return 0
	}

	return m.rank
}

// At returns the entry at row i, column j.
// Returns ErrOutOfRange if i or j lies outside [0, Rank()).
// Complexity: O(1).
func (m *Matrix) At(i, j int) (int, error) {
	if m == nil || i < 0 || i >= m.rank || j < 0 || j >= m.rank {
		return 0, ErrOutOfRange
	}

	return m.rows[i][j], nil
}

// Row returns a copy of row i. The copy is safe to retain or modify.
// Returns ErrOutOfRange if i lies outside [0, Rank()).
// Complexity: O(rank).
func (m *Matrix) Row(i int) ([]int, error) {
	if m == nil || i < 0 || i >= m.rank {
		return nil, ErrOutOfRange
	}
	row := make([]int, m.rank)
	copy(row, m.rows[i])

	return row, nil
}

// Clone returns an independent deep copy of the matrix.
// Complexity: O(rank²).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	rows := make([][]int, m.rank)
	for i := range m.rows {
		rows[i] = make([]int, m.rank)
		copy(rows[i], m.rows[i])
	}

	return &Matrix{rank: m.rank, rows: rows}
}
