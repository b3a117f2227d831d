package gmrf

import (
	"errors"
	"fmt"
)

// Sentinel errors for distribution construction and evaluation.
var (
	// ErrNonPositiveScale indicates κ ≤ 0 or a non-finite scale: the precision
	// κ·S cannot be positive definite.
	ErrNonPositiveScale = errors.New("gmrf: scale must be a positive finite number")
	// ErrNilStructure indicates a nil structure matrix.
	ErrNilStructure = errors.New("gmrf: nil structure matrix")
	// ErrNonSquareStructure indicates a structure matrix that is not n×n.
	ErrNonSquareStructure = errors.New("gmrf: structure matrix is not square")
	// ErrAsymmetricStructure indicates a structure matrix violating exact symmetry.
	ErrAsymmetricStructure = errors.New("gmrf: structure matrix is not symmetric")
	// ErrDimensionMismatch indicates an input vector whose length differs from
	// the distribution dimension. Detected before any factorization work.
	ErrDimensionMismatch = errors.New("gmrf: dimension mismatch")
	// ErrBatchSize indicates a non-positive requested sample count.
	ErrBatchSize = errors.New("gmrf: batch size must be positive")
)

func dimensionError(got, want int) error {
	return fmt.Errorf("%w: len(x)=%d, dimension %d", ErrDimensionMismatch, got, want)
}
