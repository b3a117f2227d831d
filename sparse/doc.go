// Package sparse provides the two sparse matrix formats used by a GMRF:
//
//   - COO — coordinate (triplet) storage, the construction format. Difference
//     matrices are appended row by row into a COO; duplicate coordinates are
//     legal and sum on conversion.
//   - CSR — compressed sparse row storage, the consumption format. Structure
//     matrices and Cholesky factors are CSR; lookups, matrix-vector products
//     and quadratic forms are row scans.
//
// Both formats implement gonum's mat.Matrix (Dims/At/T), so any value can be
// handed to gonum dense operations — handy for small reference computations
// and tests. Following gonum convention, At panics on an out-of-range index;
// every other method returns a sentinel error instead.
//
// Values are immutable in practice: mutating methods (Scale, AddDiag) return
// new matrices and never touch the receiver.
//
// Errors:
//
//   - ErrBadShape: non-positive column count or negative row count.
//   - ErrOutOfRange: coordinate outside the matrix shape.
//   - ErrDimensionMismatch: operand length incompatible with the shape.
package sparse
