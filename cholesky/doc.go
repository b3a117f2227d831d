// Package cholesky factorizes a sparse symmetric positive definite matrix
// S into S = UᵗU with U sparse upper-triangular, and exposes exactly the
// operations a GMRF needs from the factor:
//
//   - SolveUpper — back-substitution U·y = b (sampling: y = U⁻¹z has
//     covariance S⁻¹).
//   - LogDiagSum — Σ log U[i,i], so log det S = 2·Σ log U[i,i] without ever
//     forming a determinant or a dense inverse.
//
// How:
//
//   - Up-looking row factorization: row i of L = Uᵗ solves the lower
//     triangular system L[0:i,0:i]·x = S[0:i,i], then the pivot is
//     √(S[i,i] − ‖x‖²). Only nonzero coefficients (including fill-in) are
//     stored.
//   - A non-positive pivot aborts with ErrNotPositiveDefinite naming the
//     offending index. A pure difference structure matrix is always singular
//     (the constant vector is in its null space); add a ridge via
//     sparse.CSR.AddDiag before factorizing, or use a domain/order whose
//     caller-augmented structure is positive definite.
//
// The row solve scans every earlier factor row, so factorization costs
// O(n·nnz(U) + n²) time — adequate for the moderate dimensions GMRF domains
// use, and exact in its sparsity handling.
//
// Errors:
//
//   - ErrNotPositiveDefinite: zero or negative pivot encountered.
//   - ErrNonSquare, ErrAsymmetric: the input is not a valid structure matrix.
//   - ErrDimensionMismatch: solve vector length differs from the factor size.
package cholesky
