package cholesky_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ErickChacon/gmrf/cholesky"
	"github.com/ErickChacon/gmrf/domain"
	"github.com/ErickChacon/gmrf/operator"
	"github.com/ErickChacon/gmrf/sparse"
)

// csrFromDense builds a CSR from a row-major dense layout.
func csrFromDense(t *testing.T, n int, data []float64) *sparse.CSR {
	t.Helper()
	coo, err := sparse.NewCOO(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := data[i*n+j]; v != 0 {
				require.NoError(t, coo.Append(i, j, v))
			}
		}
	}
	return coo.ToCSR()
}

// symFromCSR copies a sparse matrix into a gonum SymDense for reference use.
func symFromCSR(s *sparse.CSR) *mat.SymDense {
	n, _ := s.Dims()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = s.At(i, j)
		}
	}
	return mat.NewSymDense(n, data)
}

// ridged returns the structure matrix of dom plus v·I, a convenient small
// SPD test matrix.
func ridged(t *testing.T, dom domain.Domain, order operator.Order, v float64) *sparse.CSR {
	t.Helper()
	s, err := operator.StructureOf(dom, order, false)
	require.NoError(t, err)
	s, err = s.AddDiag(v)
	require.NoError(t, err)
	return s
}

// TestFactorize_KnownFactor checks a 2×2 case with a hand-computed factor:
// S = [[4,2],[2,3]] ⇒ U = [[2,1],[0,√2]].
func TestFactorize_KnownFactor(t *testing.T) {
	s := csrFromDense(t, 2, []float64{4, 2, 2, 3})
	f, err := cholesky.Factorize(s)
	require.NoError(t, err)
	require.Equal(t, 2, f.Dim())

	u := f.Upper()
	require.Equal(t, 2.0, u.At(0, 0))
	require.Equal(t, 1.0, u.At(0, 1))
	require.Equal(t, 0.0, u.At(1, 0))
	require.InDelta(t, math.Sqrt(2), u.At(1, 1), 1e-15)

	// det S = 8, so Σ log U[i,i] = log(8)/2.
	require.InDelta(t, math.Log(8)/2, f.LogDiagSum(), 1e-12)
}

// TestFactorize_Reconstructs: UᵗU must reproduce S for a structure-derived
// SPD matrix.
func TestFactorize_Reconstructs(t *testing.T) {
	g, err := domain.NewGrid2D(3, 3)
	require.NoError(t, err)
	s := ridged(t, g, operator.Second, 0.5)

	f, err := cholesky.Factorize(s)
	require.NoError(t, err)

	u := f.Upper()
	var utu mat.Dense
	utu.Mul(u.T(), u)

	n, _ := s.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.InDelta(t, s.At(i, j), utu.At(i, j), 1e-10, "(U'U)[%d,%d]", i, j)
		}
	}
}

// TestFactorize_LogDetMatchesDense compares the factor log-determinant with
// gonum's dense Cholesky on the same matrix.
func TestFactorize_LogDetMatchesDense(t *testing.T) {
	g, err := domain.NewGrid2D(4, 3)
	require.NoError(t, err)
	s := ridged(t, g, operator.First, 0.25)

	f, err := cholesky.Factorize(s)
	require.NoError(t, err)

	var ch mat.Cholesky
	require.True(t, ch.Factorize(symFromCSR(s)), "dense reference factorization")
	require.InDelta(t, ch.LogDet(), 2*f.LogDiagSum(), 1e-9)
}

// TestSolveUpper verifies the back-substitution by checking the residual
// U·y − b with an independent dense multiplication.
func TestSolveUpper(t *testing.T) {
	g, err := domain.NewGrid1D(6)
	require.NoError(t, err)
	s := ridged(t, g, operator.Second, 1.0)

	f, err := cholesky.Factorize(s)
	require.NoError(t, err)

	b := []float64{1, -2, 0.5, 3, -1, 0.25}
	y, err := f.SolveUpper(b)
	require.NoError(t, err)

	u := f.Upper()
	got := make([]float64, len(b))
	require.NoError(t, u.MulVec(got, y))
	for i := range b {
		require.InDelta(t, b[i], got[i], 1e-10, "(U·y)[%d]", i)
	}
	// The right-hand side must be untouched.
	require.Equal(t, []float64{1, -2, 0.5, 3, -1, 0.25}, b)
}

func TestSolveUpper_DimensionMismatch(t *testing.T) {
	s := csrFromDense(t, 2, []float64{2, 0, 0, 2})
	f, err := cholesky.Factorize(s)
	require.NoError(t, err)
	_, err = f.SolveUpper([]float64{1})
	require.ErrorIs(t, err, cholesky.ErrDimensionMismatch)
}

// TestFactorize_Singular: a pure difference structure annihilates the
// constant vector, so factorization must fail rather than return a factor.
func TestFactorize_Singular(t *testing.T) {
	path, err := domain.NewGraph(3, []domain.Edge{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}})
	require.NoError(t, err)
	s, err := operator.StructureOf(path, operator.First, false)
	require.NoError(t, err)

	_, err = cholesky.Factorize(s)
	require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)
}

// TestFactorize_Disconnected: the classic failure mode — an order-1
// structure over a graph with two connected components is singular.
func TestFactorize_Disconnected(t *testing.T) {
	g, err := domain.NewGraph(4, []domain.Edge{{Src: 0, Dst: 1}, {Src: 2, Dst: 3}})
	require.NoError(t, err)
	s, err := operator.StructureOf(g, operator.First, false)
	require.NoError(t, err)

	_, err = cholesky.Factorize(s)
	require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)
}

func TestFactorize_Indefinite(t *testing.T) {
	s := csrFromDense(t, 2, []float64{1, 2, 2, 1}) // eigenvalues 3 and −1
	_, err := cholesky.Factorize(s)
	require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)
}

func TestFactorize_InvalidInput(t *testing.T) {
	coo, err := sparse.NewCOO(2, 3)
	require.NoError(t, err)
	_, err = cholesky.Factorize(coo.ToCSR())
	require.ErrorIs(t, err, cholesky.ErrNonSquare)

	asym := csrFromDense(t, 2, []float64{1, 1, 0, 1})
	_, err = cholesky.Factorize(asym)
	require.ErrorIs(t, err, cholesky.ErrAsymmetric)
}

// BenchmarkFactorize measures factorization of a ridged 20×20-grid
// structure matrix (n = 400).
func BenchmarkFactorize(b *testing.B) {
	g, err := domain.NewGrid2D(20, 20)
	if err != nil {
		b.Fatal(err)
	}
	s, err := operator.StructureOf(g, operator.Second, false)
	if err != nil {
		b.Fatal(err)
	}
	if s, err = s.AddDiag(0.5); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = cholesky.Factorize(s); err != nil {
			b.Fatal(err)
		}
	}
}
