package sparse

import "errors"

// Sentinel errors for sparse matrix operations.
var (
	// ErrBadShape indicates an invalid requested shape (r < 0 or c < 1).
	ErrBadShape = errors.New("sparse: invalid shape")
	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")
	// ErrDimensionMismatch indicates an operand whose length does not match the shape.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
