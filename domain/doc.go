// Package domain describes the discrete index sets a Gaussian Markov Random
// Field is defined over: 1-D grids, 2-D grids, and simple undirected graphs.
//
// What:
//
//   - Grid1D — n elements on a line.
//   - Grid2D — n₁×n₂ elements on a lattice, linearized column-major:
//     Index(i, j) = j·n₁ + i.
//   - Graph  — n vertices plus an ordered edge list; iteration order is the
//     insertion order and never changes, so difference matrices built from a
//     Graph are reproducible.
//
// Why:
//
//   - The difference operators in package operator dispatch on these types;
//     every boundary case (interior, edge, corner, circular wrap) reduces to
//     index arithmetic on a Domain.
//   - Graph.ConnectedComponents lets callers diagnose the singular case of an
//     order-1 structure over a disconnected graph before factorization fails.
//
// All domains are immutable once constructed; constructors validate inputs
// and the package never mutates caller data.
//
// Errors:
//
//   - ErrEmptyDomain: requested extent smaller than one element.
//   - ErrVertexRange: an edge endpoint is outside [0, n).
//   - ErrLoopEdge: an edge connects a vertex to itself.
//   - ErrDuplicateEdge: the same undirected edge was listed twice.
package domain
