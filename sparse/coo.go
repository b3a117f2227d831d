package sparse

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

type entry struct {
	i, j int
	v    float64
}

// COO is a coordinate-format sparse matrix. It is append-only: rows of a
// difference matrix are pushed one coefficient at a time. Duplicate
// coordinates are allowed and sum together under At and ToCSR.
//
// A COO with zero rows is valid (an empty constraint set).
type COO struct {
	r, c    int
	entries []entry
}

// NewCOO returns an empty r×c coordinate matrix.
// Returns ErrBadShape if r < 0 or c < 1.
func NewCOO(r, c int) (*COO, error) {
	if r < 0 || c < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, r, c)
	}
	return &COO{r: r, c: c}, nil
}

// Dims returns the matrix shape.
func (m *COO) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored entries (duplicates counted separately).
func (m *COO) NNZ() int { return len(m.entries) }

// Append records value v at (i, j).
// Returns ErrOutOfRange if the coordinate is outside the shape.
// Complexity: O(1) amortized.
func (m *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.r, m.c)
	}
	m.entries = append(m.entries, entry{i: i, j: j, v: v})
	return nil
}

// At returns the element at (i, j), summing duplicate entries.
// Panics if the index is out of range (gonum mat.Matrix convention).
// Complexity: O(nnz).
func (m *COO) At(i, j int) float64 {
	if i < 0 || i >= m.r {
		panic("sparse: row index out of range")
	}
	if j < 0 || j >= m.c {
		panic("sparse: column index out of range")
	}
	var s float64
	for _, e := range m.entries {
		if e.i == i && e.j == j {
			s += e.v
		}
	}
	return s
}

// T returns the transpose as a gonum matrix view.
func (m *COO) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// MulVec computes dst = M·x.
// Returns ErrDimensionMismatch if len(x) ≠ cols or len(dst) ≠ rows.
// Complexity: O(nnz).
func (m *COO) MulVec(dst, x []float64) error {
	if len(x) != m.c || len(dst) != m.r {
		return fmt.Errorf("%w: MulVec %dx%d with len(x)=%d len(dst)=%d", ErrDimensionMismatch, m.r, m.c, len(x), len(dst))
	}
	for i := range dst {
		dst[i] = 0
	}
	for _, e := range m.entries {
		dst[e.i] += e.v * x[e.j]
	}
	return nil
}

// MulTransVec computes dst = Mᵗ·x.
// Returns ErrDimensionMismatch if len(x) ≠ rows or len(dst) ≠ cols.
// Complexity: O(nnz).
func (m *COO) MulTransVec(dst, x []float64) error {
	if len(x) != m.r || len(dst) != m.c {
		return fmt.Errorf("%w: MulTransVec %dx%d with len(x)=%d len(dst)=%d", ErrDimensionMismatch, m.r, m.c, len(x), len(dst))
	}
	for i := range dst {
		dst[i] = 0
	}
	for _, e := range m.entries {
		dst[e.j] += e.v * x[e.i]
	}
	return nil
}

// RowSums returns the per-row coefficient sums. Every row of a difference
// matrix is a linear contrast, so its sum must be exactly zero.
// Complexity: O(r + nnz).
func (m *COO) RowSums() []float64 {
	sums := make([]float64, m.r)
	for _, e := range m.entries {
		sums[e.i] += e.v
	}
	return sums
}

// ToCSR compresses the matrix into CSR form. Duplicate coordinates are
// summed; entries summing to exactly zero are dropped. The result is
// independent of the order entries were appended in.
//
// Complexity: O(nnz·log nnz).
func (m *COO) ToCSR() *CSR {
	es := make([]entry, len(m.entries))
	copy(es, m.entries)
	sort.Slice(es, func(a, b int) bool {
		if es[a].i != es[b].i {
			return es[a].i < es[b].i
		}
		return es[a].j < es[b].j
	})

	out := &CSR{r: m.r, c: m.c, ptr: make([]int, m.r+1)}
	for k := 0; k < len(es); {
		i, j := es[k].i, es[k].j
		v := es[k].v
		k++
		for k < len(es) && es[k].i == i && es[k].j == j {
			v += es[k].v
			k++
		}
		if v == 0 {
			continue
		}
		out.ind = append(out.ind, j)
		out.val = append(out.val, v)
		out.ptr[i+1]++
	}
	for i := 0; i < m.r; i++ {
		out.ptr[i+1] += out.ptr[i]
	}
	return out
}
