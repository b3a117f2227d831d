// Package operator builds the sparse difference matrix D of a domain and
// assembles the structure matrix S = DᵗD that defines a GMRF precision.
//
// What:
//
//   - Difference(d, order, circular) — one row of D per local contrast:
//     first differences (−1/+1 neighbor pairs) or second differences
//     (boundary-aware Laplacian stencils). Circular grids wrap toroidally.
//   - Structure(D) — the Gram matrix DᵗD, accumulated exactly from integer
//     contributions so S is symmetric bit-for-bit.
//   - StructureOf(d, order, circular) — the composition of the two.
//
// Construction rules per domain kind:
//
//	Grid1D  order 1: (n−1)×n rows −1,+1; circular: n rows with mod-n wrap.
//	        order 2: (n−2)×n rows +1,−2,+1; circular: n rows with wrap.
//	Grid2D  order 1: one row per axis-aligned neighbor pair (vertical pairs
//	        first, then horizontal, column-major within each group);
//	        circular: exactly 2·n rows (right and top toroidal neighbor
//	        of every cell).
//	        order 2: one row per cell. Circular: −4 center, +1 at the four
//	        toroidal neighbors. Non-circular: a per-cell classification pass
//	        emits −4/−3/−2 at interior/edge/corner cells with +1 at each
//	        in-domain neighbor.
//	Graph   order 1: one row per edge, −1 at Src, +1 at Dst, in the graph's
//	        stable edge order.
//	        order 2: the negative graph Laplacian −DᵗD directly; there is no
//	        distinct second-difference contrast on a graph.
//
// Every constructed row sums to exactly zero: rows are contrasts, never
// absolute levels. Any (domain kind, order, circular) combination outside
// the table above fails with a sentinel; nothing is silently substituted.
//
// Errors:
//
//   - ErrUnsupportedOrder: order outside {First, Second}.
//   - ErrUnsupportedDomain: a Domain implementation this package cannot build for.
//   - ErrCircularGraph: circular wrap requested on a graph domain.
//   - ErrNilDifference: Structure called with a nil matrix.
package operator
