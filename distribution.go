package gmrf

import (
	"fmt"
	"math"
	"sync"

	"github.com/ErickChacon/gmrf/sparse"
)

// Distribution is a zero-mean Gaussian Markov Random Field with precision
// Q = κ·S: scale κ > 0 and sparse symmetric structure matrix S. It is the
// standard Field implementation and carries the shared algorithms with a
// lazily cached Cholesky factor.
//
// A Distribution is immutable and safe for concurrent use: the factor cache
// fills exactly once (single writer) and is read-only afterwards. Callers
// must still not share one NormalSource across goroutines.
type Distribution struct {
	kappa  float64
	s      *sparse.CSR
	engine Engine

	once   sync.Once
	fac    Factor
	facErr error
}

var _ Field = (*Distribution)(nil)

// New constructs a Distribution from a positive finite scale and a square,
// exactly symmetric structure matrix. The structure matrix is not copied;
// it must not be mutated afterwards (CSR values returned by this module
// never are).
//
// Returns ErrNonPositiveScale, ErrNilStructure, ErrNonSquareStructure or
// ErrAsymmetricStructure on invalid input. Singularity of S is not checked
// here — it surfaces as a not-positive-definite error on first use of the
// factor.
func New(kappa float64, s *sparse.CSR, opts ...Option) (*Distribution, error) {
	if kappa <= 0 || math.IsNaN(kappa) || math.IsInf(kappa, 0) {
		return nil, fmt.Errorf("%w: κ=%v", ErrNonPositiveScale, kappa)
	}
	if s == nil {
		return nil, ErrNilStructure
	}
	if r, c := s.Dims(); r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquareStructure, r, c)
	}
	if !s.IsSymmetric() {
		return nil, ErrAsymmetricStructure
	}

	d := &Distribution{kappa: kappa, s: s, engine: DefaultEngine()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dimension returns n, the number of field elements.
func (d *Distribution) Dimension() int {
	n, _ := d.s.Dims()
	return n
}

// Scale returns κ.
func (d *Distribution) Scale() float64 { return d.kappa }

// Structure returns the structure matrix S.
func (d *Distribution) Structure() *sparse.CSR { return d.s }

// Precision returns the precision matrix Q = κ·S as a freshly built matrix;
// it is derived, never stored.
func (d *Distribution) Precision() *sparse.CSR { return d.s.Scale(d.kappa) }

// factor returns the cached Cholesky factor of S, computing it on first use.
func (d *Distribution) factor() (Factor, error) {
	d.once.Do(func() {
		d.fac, d.facErr = d.engine.Factorize(d.s)
	})
	return d.fac, d.facErr
}

// Sample draws one realization x ~ N(0, (κS)⁻¹). A nil src uses the default
// seeded source.
//
// Returns the factorization error (typically not-positive-definite) if S
// cannot be factorized.
func (d *Distribution) Sample(src NormalSource) ([]float64, error) {
	fac, err := d.factor()
	if err != nil {
		return nil, err
	}
	return sampleOne(d, fac, src)
}

// SampleN draws m independent realizations, reusing one factorization.
// Returns ErrBatchSize if m < 1.
func (d *Distribution) SampleN(src NormalSource, m int) ([][]float64, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: m=%d", ErrBatchSize, m)
	}
	fac, err := d.factor()
	if err != nil {
		return nil, err
	}
	out := make([][]float64, m)
	for i := 0; i < m; i++ {
		if out[i], err = sampleOne(d, fac, src); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// LogDensity evaluates log p(x). The dimension check runs before any
// factorization work, so a mismatched input fails fast even when S is
// singular.
func (d *Distribution) LogDensity(x []float64) (float64, error) {
	if len(x) != d.Dimension() {
		return 0, dimensionError(len(x), d.Dimension())
	}
	fac, err := d.factor()
	if err != nil {
		return 0, err
	}
	return logDensityOne(d, fac, x)
}

// LogDensityBatch evaluates log p(x) for each vector, factorizing once.
// Every vector must have the distribution's dimension.
func (d *Distribution) LogDensityBatch(xs [][]float64) ([]float64, error) {
	for i, x := range xs {
		if len(x) != d.Dimension() {
			return nil, fmt.Errorf("%w: vector %d has len %d, dimension %d",
				ErrDimensionMismatch, i, len(x), d.Dimension())
		}
	}
	fac, err := d.factor()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		if out[i], err = logDensityOne(d, fac, x); err != nil {
			return nil, err
		}
	}
	return out, nil
}
