package domain

import "fmt"

// Domain is the index set a field is defined over. Concrete implementations
// in this package are Grid1D, Grid2D and *Graph; package operator dispatches
// on these types when building difference matrices.
type Domain interface {
	// Len returns the number of elements in the domain.
	Len() int
}

// Grid1D is a line of n elements, indexed 0..n-1.
type Grid1D struct {
	n int
}

// NewGrid1D constructs a 1-D grid with n elements.
// Returns ErrEmptyDomain if n < 1.
// Complexity: O(1).
func NewGrid1D(n int) (Grid1D, error) {
	if n < 1 {
		return Grid1D{}, fmt.Errorf("%w: n=%d", ErrEmptyDomain, n)
	}
	return Grid1D{n: n}, nil
}

// Len returns the number of elements.
func (g Grid1D) Len() int { return g.n }

// Grid2D is an n₁×n₂ lattice. Elements are linearized column-major:
// Index(i, j) = j·n₁ + i, with i the within-column offset (0..n₁-1) and
// j the column (0..n₂-1).
type Grid2D struct {
	n1, n2 int
}

// NewGrid2D constructs a 2-D grid with extents n1×n2.
// Returns ErrEmptyDomain if either extent is < 1.
// Complexity: O(1).
func NewGrid2D(n1, n2 int) (Grid2D, error) {
	if n1 < 1 || n2 < 1 {
		return Grid2D{}, fmt.Errorf("%w: extents %dx%d", ErrEmptyDomain, n1, n2)
	}
	return Grid2D{n1: n1, n2: n2}, nil
}

// Len returns the total element count n₁·n₂.
func (g Grid2D) Len() int { return g.n1 * g.n2 }

// Extents returns the per-axis extents (n₁, n₂).
func (g Grid2D) Extents() (n1, n2 int) { return g.n1, g.n2 }

// Index maps coordinates (i, j) to the column-major linear index j·n₁ + i.
// Complexity: O(1).
func (g Grid2D) Index(i, j int) int { return j*g.n1 + i }

// Coordinate converts a linear index back to (i, j).
// Complexity: O(1).
func (g Grid2D) Coordinate(k int) (i, j int) { return k % g.n1, k / g.n1 }

// InBounds reports whether (i, j) lies within the grid.
// Complexity: O(1).
func (g Grid2D) InBounds(i, j int) bool {
	return i >= 0 && i < g.n1 && j >= 0 && j < g.n2
}
