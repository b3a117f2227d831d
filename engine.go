package gmrf

import (
	"github.com/ErickChacon/gmrf/cholesky"
	"github.com/ErickChacon/gmrf/sparse"
)

// Factor is the slice of a sparse Cholesky factorization S = UᵗU that the
// distribution algorithms consume: one triangular solve direction and the
// log-determinant of S via the factor diagonal.
type Factor interface {
	// SolveUpper solves U·y = b by back-substitution without modifying b.
	SolveUpper(b []float64) ([]float64, error)
	// LogDiagSum returns Σ log U[i,i]; log det S = 2·LogDiagSum().
	LogDiagSum() float64
}

// Engine produces Cholesky factors of structure matrices. Implementations
// must fail with a not-positive-definite error on singular or indefinite
// input rather than return an unusable factor.
type Engine interface {
	Factorize(s *sparse.CSR) (Factor, error)
}

// defaultEngine adapts package cholesky to the Engine interface.
type defaultEngine struct{}

func (defaultEngine) Factorize(s *sparse.CSR) (Factor, error) {
	f, err := cholesky.Factorize(s)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// DefaultEngine returns the built-in sparse Cholesky engine.
func DefaultEngine() Engine { return defaultEngine{} }
