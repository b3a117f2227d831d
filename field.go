package gmrf

import (
	"math"

	"github.com/ErickChacon/gmrf/sparse"
)

// Field is the capability interface any concrete GMRF variant implements.
// The sampling and log-density algorithms below are written once against
// Field, so a variant only has to expose its dimension, scale and structure
// matrix to inherit them.
type Field interface {
	// Dimension returns n, the number of elements the field is defined over.
	Dimension() int
	// Scale returns κ > 0; the precision matrix is Q = κ·Structure().
	Scale() float64
	// Structure returns the sparse symmetric structure matrix S.
	Structure() *sparse.CSR
}

var logTwoPi = math.Log(2 * math.Pi)

// Sample draws one realization of f using a fresh factorization from eng.
// When several draws or densities are needed, prefer Distribution, which
// caches its factor. A nil src falls back to the default seeded source; a
// nil eng falls back to DefaultEngine.
func Sample(f Field, src NormalSource, eng Engine) ([]float64, error) {
	if eng == nil {
		eng = DefaultEngine()
	}
	fac, err := eng.Factorize(f.Structure())
	if err != nil {
		return nil, err
	}
	return sampleOne(f, fac, src)
}

// LogDensity evaluates log p(x) under f using a fresh factorization from
// eng. Fails with ErrDimensionMismatch before factorizing if len(x) differs
// from f.Dimension().
func LogDensity(f Field, x []float64, eng Engine) (float64, error) {
	if len(x) != f.Dimension() {
		return 0, dimensionError(len(x), f.Dimension())
	}
	if eng == nil {
		eng = DefaultEngine()
	}
	fac, err := eng.Factorize(f.Structure())
	if err != nil {
		return 0, err
	}
	return logDensityOne(f, fac, x)
}

// sampleOne draws z ~ N(0, I), solves U·y = z and rescales by 1/√κ, so the
// result has covariance (κS)⁻¹.
func sampleOne(f Field, fac Factor, src NormalSource) ([]float64, error) {
	if src == nil {
		src = NewNormalSource(0)
	}
	z := make([]float64, f.Dimension())
	src.FillStandardNormal(z)

	y, err := fac.SolveUpper(z)
	if err != nil {
		return nil, err
	}
	inv := 1 / math.Sqrt(f.Scale())
	for i := range y {
		y[i] *= inv
	}
	return y, nil
}

// logDensityOne computes
//
//	log p(x) = −(n/2)·log 2π + (n·log κ + log det S)/2 − (κ/2)·xᵗSx
//
// with log det S taken from the factor diagonal. The caller has already
// checked the dimension.
func logDensityOne(f Field, fac Factor, x []float64) (float64, error) {
	n := float64(f.Dimension())
	kappa := f.Scale()

	quad, err := f.Structure().QuadForm(x)
	if err != nil {
		return 0, err
	}
	logDet := 2 * fac.LogDiagSum()
	return -0.5*n*logTwoPi + 0.5*(n*math.Log(kappa)+logDet) - 0.5*kappa*quad, nil
}
