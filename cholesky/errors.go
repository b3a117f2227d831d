package cholesky

import "errors"

// Sentinel errors for factorization and solves.
var (
	// ErrNotPositiveDefinite indicates a zero or negative pivot: the matrix is
	// singular or indefinite. Fatal for this matrix; supply a different
	// structure or add a ridge term.
	ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive definite")
	// ErrNonSquare indicates a non-square input matrix.
	ErrNonSquare = errors.New("cholesky: matrix is not square")
	// ErrAsymmetric indicates the input violates exact symmetry.
	ErrAsymmetric = errors.New("cholesky: matrix is not symmetric")
	// ErrDimensionMismatch indicates a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("cholesky: dimension mismatch")
)
