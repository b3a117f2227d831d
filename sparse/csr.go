package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CSR is a compressed-sparse-row matrix: ptr has r+1 offsets into ind/val,
// and within each row the column indices are strictly ascending. Build one
// via COO.ToCSR; all CSR methods treat the receiver as immutable.
type CSR struct {
	r, c int
	ptr  []int
	ind  []int
	val  []float64
}

// Dims returns the matrix shape.
func (m *CSR) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored nonzeros.
func (m *CSR) NNZ() int { return len(m.ind) }

// Row returns views of row i's column indices and values. The returned
// slices alias internal storage and must not be modified.
// Complexity: O(1).
func (m *CSR) Row(i int) (cols []int, vals []float64) {
	lo, hi := m.ptr[i], m.ptr[i+1]
	return m.ind[lo:hi], m.val[lo:hi]
}

// At returns the element at (i, j).
// Panics if the index is out of range (gonum mat.Matrix convention).
// Complexity: O(nnz(row i)).
func (m *CSR) At(i, j int) float64 {
	if i < 0 || i >= m.r {
		panic("sparse: row index out of range")
	}
	if j < 0 || j >= m.c {
		panic("sparse: column index out of range")
	}
	for k := m.ptr[i]; k < m.ptr[i+1]; k++ {
		if m.ind[k] == j {
			return m.val[k]
		}
		if m.ind[k] > j {
			break
		}
	}
	return 0
}

// T returns the transpose as a gonum matrix view.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// MulVec computes dst = M·x.
// Returns ErrDimensionMismatch if len(x) ≠ cols or len(dst) ≠ rows.
// Complexity: O(nnz).
func (m *CSR) MulVec(dst, x []float64) error {
	if len(x) != m.c || len(dst) != m.r {
		return fmt.Errorf("%w: MulVec %dx%d with len(x)=%d len(dst)=%d", ErrDimensionMismatch, m.r, m.c, len(x), len(dst))
	}
	for i := 0; i < m.r; i++ {
		var s float64
		for k := m.ptr[i]; k < m.ptr[i+1]; k++ {
			s += m.val[k] * x[m.ind[k]]
		}
		dst[i] = s
	}
	return nil
}

// QuadForm computes the quadratic form xᵗ·M·x.
// Returns ErrDimensionMismatch if the matrix is not square or len(x) ≠ n.
// Complexity: O(nnz).
func (m *CSR) QuadForm(x []float64) (float64, error) {
	if m.r != m.c || len(x) != m.r {
		return 0, fmt.Errorf("%w: QuadForm %dx%d with len(x)=%d", ErrDimensionMismatch, m.r, m.c, len(x))
	}
	var q float64
	for i := 0; i < m.r; i++ {
		var s float64
		for k := m.ptr[i]; k < m.ptr[i+1]; k++ {
			s += m.val[k] * x[m.ind[k]]
		}
		q += x[i] * s
	}
	return q, nil
}

// Scale returns a new matrix α·M. The receiver is unchanged.
// Complexity: O(nnz).
func (m *CSR) Scale(alpha float64) *CSR {
	out := m.clone()
	for k := range out.val {
		out.val[k] *= alpha
	}
	return out
}

// AddDiag returns a new matrix M + v·I. The receiver is unchanged. This is
// the ridge term callers add when a structure matrix alone is singular
// (every pure difference structure annihilates the constant vector).
//
// Returns ErrDimensionMismatch if the matrix is not square.
//
// Complexity: O(n + nnz·log nnz).
func (m *CSR) AddDiag(v float64) (*CSR, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("%w: AddDiag on %dx%d", ErrDimensionMismatch, m.r, m.c)
	}
	coo, err := NewCOO(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		for k := m.ptr[i]; k < m.ptr[i+1]; k++ {
			if err = coo.Append(i, m.ind[k], m.val[k]); err != nil {
				return nil, err
			}
		}
		if err = coo.Append(i, i, v); err != nil {
			return nil, err
		}
	}
	return coo.ToCSR(), nil
}

// IsSymmetric reports whether M equals its transpose exactly. Structure
// matrices are sums of integer-valued contributions, so symmetry must hold
// bit-for-bit, not within a tolerance.
// Complexity: O(nnz·log c).
func (m *CSR) IsSymmetric() bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for k := m.ptr[i]; k < m.ptr[i+1]; k++ {
			if m.At(m.ind[k], i) != m.val[k] {
				return false
			}
		}
	}
	return true
}

func (m *CSR) clone() *CSR {
	out := &CSR{
		r:   m.r,
		c:   m.c,
		ptr: make([]int, len(m.ptr)),
		ind: make([]int, len(m.ind)),
		val: make([]float64, len(m.val)),
	}
	copy(out.ptr, m.ptr)
	copy(out.ind, m.ind)
	copy(out.val, m.val)
	return out
}
