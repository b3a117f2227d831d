package cholesky

import (
	"fmt"
	"math"

	"github.com/ErickChacon/gmrf/sparse"
)

// coef is one off-diagonal coefficient of a factor row.
type coef struct {
	col int
	val float64
}

// Factor is the sparse upper-triangular Cholesky factor U of S = UᵗU.
// Internally rows of L = Uᵗ are stored (equivalently, columns of U), which
// is the natural layout for both the up-looking factorization and the
// back-substitution. Immutable once returned.
type Factor struct {
	n    int
	rows [][]coef  // rows[i] holds L[i,k] for k < i, ascending k
	diag []float64 // diag[i] = L[i,i] = U[i,i] > 0
}

// Factorize computes the Cholesky factorization of a sparse symmetric
// positive definite matrix.
//
// Returns ErrNonSquare or ErrAsymmetric for invalid inputs, and
// ErrNotPositiveDefinite (with the pivot index) if a pivot is ≤ 0.
//
// Complexity: O(n·nnz(U) + n²) time, O(nnz(U)) memory.
func Factorize(s *sparse.CSR) (*Factor, error) {
	r, c := s.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, r, c)
	}
	if !s.IsSymmetric() {
		return nil, ErrAsymmetric
	}

	n := r
	f := &Factor{
		n:    n,
		rows: make([][]coef, n),
		diag: make([]float64, n),
	}
	x := make([]float64, n) // dense workspace, zero outside the active row

	for i := 0; i < n; i++ {
		// Scatter the strict lower part of S's row i (S[i,j], j<i) and pick
		// up the diagonal.
		cols, vals := s.Row(i)
		var sii float64
		for k, j := range cols {
			switch {
			case j < i:
				x[j] = vals[k]
			case j == i:
				sii = vals[k]
			}
		}

		// Forward substitution against the rows already factorized:
		// x[j] = (S[j,i] − Σ_{k<j} L[j,k]·x[k]) / L[j,j]. Fill-in appears
		// here as x[j] turning nonzero for untouched j.
		var rowi []coef
		var sq float64
		for j := 0; j < i; j++ {
			acc := x[j]
			for _, e := range f.rows[j] {
				acc -= e.val * x[e.col]
			}
			if acc == 0 {
				x[j] = 0
				continue
			}
			v := acc / f.diag[j]
			x[j] = v
			rowi = append(rowi, coef{col: j, val: v})
			sq += v * v
		}

		piv := sii - sq
		if piv <= 0 || math.IsNaN(piv) {
			return nil, fmt.Errorf("%w: pivot %d", ErrNotPositiveDefinite, i)
		}
		f.diag[i] = math.Sqrt(piv)
		f.rows[i] = rowi

		// Reset the workspace for the next row.
		for _, e := range rowi {
			x[e.col] = 0
		}
	}
	return f, nil
}

// Dim returns the factor size n.
func (f *Factor) Dim() int { return f.n }

// SolveUpper solves U·y = b by back-substitution and returns y. This is the
// solve direction sampling needs: with z standard normal, y = U⁻¹z has
// covariance U⁻¹U⁻ᵗ = (UᵗU)⁻¹ = S⁻¹. The input is not modified.
//
// Returns ErrDimensionMismatch if len(b) ≠ Dim().
//
// Complexity: O(n + nnz(U)).
func (f *Factor) SolveUpper(b []float64) ([]float64, error) {
	if len(b) != f.n {
		return nil, fmt.Errorf("%w: len(b)=%d, n=%d", ErrDimensionMismatch, len(b), f.n)
	}
	y := make([]float64, f.n)
	copy(y, b)
	for i := f.n - 1; i >= 0; i-- {
		y[i] /= f.diag[i]
		// U[k,i] = L[i,k]: propagate y[i] into the remaining equations.
		for _, e := range f.rows[i] {
			y[e.col] -= e.val * y[i]
		}
	}
	return y, nil
}

// LogDiagSum returns Σ log U[i,i], so that log det S = 2·LogDiagSum().
// Complexity: O(n).
func (f *Factor) LogDiagSum() float64 {
	var s float64
	for _, d := range f.diag {
		s += math.Log(d)
	}
	return s
}

// Upper reconstructs the factor as an explicit upper-triangular CSR matrix,
// U[i,i] = diag[i] and U[k,i] = L[i,k] for k < i. Mainly for inspection and
// verification (UᵗU should reproduce S).
//
// Complexity: O(nnz(U)·log nnz(U)).
func (f *Factor) Upper() *sparse.CSR {
	coo, err := sparse.NewCOO(f.n, f.n)
	if err != nil {
		panic(err)
	}
	for i := 0; i < f.n; i++ {
		if err = coo.Append(i, i, f.diag[i]); err != nil {
			panic(err)
		}
		for _, e := range f.rows[i] {
			if err = coo.Append(e.col, i, e.val); err != nil {
				panic(err)
			}
		}
	}
	return coo.ToCSR()
}
