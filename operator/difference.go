package operator

import (
	"fmt"

	"github.com/ErickChacon/gmrf/domain"
	"github.com/ErickChacon/gmrf/sparse"
)

// Difference builds the sparse difference matrix D for the given domain,
// order, and boundary policy. Rows are emitted in a deterministic order, so
// the same inputs always produce the same matrix.
//
// Returns ErrUnsupportedOrder, ErrUnsupportedDomain or ErrCircularGraph for
// combinations with no construction rule (see the package documentation for
// the full table).
//
// Complexity: O(rows) time and memory; rows ≤ 2·n for every supported case.
func Difference(d domain.Domain, order Order, circular bool) (*sparse.COO, error) {
	if !order.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedOrder, int(order))
	}
	switch dom := d.(type) {
	case domain.Grid1D:
		return diffGrid1D(dom, order, circular), nil
	case domain.Grid2D:
		return diffGrid2D(dom, order, circular), nil
	case *domain.Graph:
		if circular {
			return nil, fmt.Errorf("%w: order %d", ErrCircularGraph, int(order))
		}
		if order == First {
			return diffGraph(dom), nil
		}
		return negLaplacian(dom), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedDomain, d)
	}
}

// push appends one coefficient; coordinates are in-bounds by construction,
// so a failure here is a programmer error, not a user condition.
func push(m *sparse.COO, i, j int, v float64) {
	if err := m.Append(i, j, v); err != nil {
		panic(err)
	}
}

func mustCOO(r, c int) *sparse.COO {
	m, err := sparse.NewCOO(r, c)
	if err != nil {
		panic(err)
	}
	return m
}

// diffGrid1D emits first or second differences along a line. Non-circular
// operators lose one (order 1) or two (order 2) rows at the right boundary;
// circular operators keep n rows and wrap column indices mod n.
func diffGrid1D(g domain.Grid1D, order Order, circular bool) *sparse.COO {
	n := g.Len()

	switch {
	case order == First && !circular:
		d := mustCOO(maxInt(n-1, 0), n)
		for i := 0; i < n-1; i++ {
			push(d, i, i, -1)
			push(d, i, i+1, 1)
		}
		return d
	case order == First && circular:
		d := mustCOO(n, n)
		for i := 0; i < n; i++ {
			push(d, i, i, -1)
			push(d, i, (i+1)%n, 1)
		}
		return d
	case order == Second && !circular:
		d := mustCOO(maxInt(n-2, 0), n)
		for i := 0; i < n-2; i++ {
			push(d, i, i, 1)
			push(d, i, i+1, -2)
			push(d, i, i+2, 1)
		}
		return d
	default: // Second, circular
		d := mustCOO(n, n)
		for i := 0; i < n; i++ {
			push(d, i, i, 1)
			push(d, i, (i+1)%n, -2)
			push(d, i, (i+2)%n, 1)
		}
		return d
	}
}

// diffGrid2D emits differences over an n₁×n₂ lattice with column-major
// linearization (see domain.Grid2D.Index).
func diffGrid2D(g domain.Grid2D, order Order, circular bool) *sparse.COO {
	n1, n2 := g.Extents()
	n := g.Len()

	switch {
	case order == First && !circular:
		// Vertical pairs (i,j)-(i+1,j) first, then horizontal (i,j)-(i,j+1),
		// column-major within each group.
		d := mustCOO((n1-1)*n2+n1*(n2-1), n)
		row := 0
		for j := 0; j < n2; j++ {
			for i := 0; i < n1-1; i++ {
				push(d, row, g.Index(i, j), -1)
				push(d, row, g.Index(i+1, j), 1)
				row++
			}
		}
		for j := 0; j < n2-1; j++ {
			for i := 0; i < n1; i++ {
				push(d, row, g.Index(i, j), -1)
				push(d, row, g.Index(i, j+1), 1)
				row++
			}
		}
		return d
	case order == First && circular:
		// Every cell paired with its wrap-around right and top neighbor:
		// exactly 2·n rows.
		d := mustCOO(2*n, n)
		row := 0
		for j := 0; j < n2; j++ {
			for i := 0; i < n1; i++ {
				push(d, row, g.Index(i, j), -1)
				push(d, row, g.Index((i+1)%n1, j), 1)
				row++
				push(d, row, g.Index(i, j), -1)
				push(d, row, g.Index(i, (j+1)%n2), 1)
				row++
			}
		}
		return d
	case order == Second && circular:
		// Toroidal five-point stencil: −4 center, +1 at the four wrapped
		// neighbors. On a degenerate axis (extent 1 or 2) neighbors collide
		// and their coefficients accumulate naturally under COO summation.
		d := mustCOO(n, n)
		for j := 0; j < n2; j++ {
			for i := 0; i < n1; i++ {
				k := g.Index(i, j)
				push(d, k, k, -4)
				push(d, k, g.Index((i+1)%n1, j), 1)
				push(d, k, g.Index((i-1+n1)%n1, j), 1)
				push(d, k, g.Index(i, (j+1)%n2), 1)
				push(d, k, g.Index(i, (j-1+n2)%n2), 1)
			}
		}
		return d
	default: // Second, non-circular
		// Boundary-aware stencil: each cell is classified by its in-domain
		// neighbor set; the center coefficient is minus the neighbor count
		// (−4 interior, −3 edge, −2 corner).
		d := mustCOO(n, n)
		for j := 0; j < n2; j++ {
			for i := 0; i < n1; i++ {
				k := g.Index(i, j)
				center, nbrs := stencilAt(g, i, j)
				push(d, k, k, center)
				for _, nk := range nbrs {
					push(d, k, nk, 1)
				}
			}
		}
		return d
	}
}

// gridOffsets are the four axis-aligned neighbor directions of a 2-D cell,
// in a fixed (right, left, top, bottom) order for deterministic output.
var gridOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// stencilAt classifies cell (i,j) of a non-circular grid and returns its
// tagged stencil: the center coefficient and the linear indices of the
// in-domain neighbors. The center is always the negated neighbor count, so
// the emitted row sums to zero for interior, edge and corner cells alike.
func stencilAt(g domain.Grid2D, i, j int) (center float64, nbrs []int) {
	nbrs = make([]int, 0, len(gridOffsets))
	for _, off := range gridOffsets {
		ni, nj := i+off[0], j+off[1]
		if g.InBounds(ni, nj) {
			nbrs = append(nbrs, g.Index(ni, nj))
		}
	}
	return -float64(len(nbrs)), nbrs
}

// diffGraph emits one row per edge: −1 at the source, +1 at the destination,
// in the graph's stable edge order.
func diffGraph(g *domain.Graph) *sparse.COO {
	d := mustCOO(g.EdgeCount(), g.Len())
	for row, e := range g.Edges() {
		push(d, row, e.Src, -1)
		push(d, row, e.Dst, 1)
	}
	return d
}

// negLaplacian builds the order-2 graph operator −D₁ᵗD₁, the negative graph
// Laplacian: degree on the diagonal negated, +1 per adjacent pair. Graphs
// have no second-difference contrast of their own, so construction collapses
// into the Gram step.
func negLaplacian(g *domain.Graph) *sparse.COO {
	d1 := diffGraph(g)
	s := gram(d1)

	n := g.Len()
	out := mustCOO(n, n)
	for i := 0; i < n; i++ {
		cols, vals := s.Row(i)
		for k, j := range cols {
			push(out, i, j, -vals[k])
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
