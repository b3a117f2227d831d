package operator

import (
	"sort"

	"github.com/ErickChacon/gmrf/domain"
	"github.com/ErickChacon/gmrf/sparse"
)

// Structure assembles the structure matrix S = DᵗD from a difference matrix.
// Each row of D contributes the outer product of its coefficient pattern, so
// the result is symmetric positive semidefinite by construction. All
// contributions are integer-valued, which makes the symmetry exact:
// S[i,j] == S[j,i] bit-for-bit.
//
// Returns ErrNilDifference if d is nil.
//
// Complexity: O(Σ nnz(row)² + nnz(S)·log nnz(S)).
func Structure(d *sparse.COO) (*sparse.CSR, error) {
	if d == nil {
		return nil, ErrNilDifference
	}
	return gram(d), nil
}

// StructureOf is the composition Difference + Structure for the common case
// where the intermediate D is not needed.
func StructureOf(d domain.Domain, order Order, circular bool) (*sparse.CSR, error) {
	diff, err := Difference(d, order, circular)
	if err != nil {
		return nil, err
	}
	return gram(diff), nil
}

type gramKey struct {
	i, j int
}

// gram accumulates DᵗD into a dictionary-of-keys and compresses it to CSR.
// Entries that cancel to exactly zero are dropped by the COO compression.
func gram(d *sparse.COO) *sparse.CSR {
	rows, cols := d.Dims()

	// Bucket entries per constraint row.
	type coef struct {
		j int
		v float64
	}
	byRow := make([][]coef, rows)
	csr := d.ToCSR()
	for i := 0; i < rows; i++ {
		cs, vs := csr.Row(i)
		rc := make([]coef, len(cs))
		for k := range cs {
			rc[k] = coef{j: cs[k], v: vs[k]}
		}
		byRow[i] = rc
	}

	acc := make(map[gramKey]float64)
	for _, rc := range byRow {
		for _, a := range rc {
			for _, b := range rc {
				acc[gramKey{i: a.j, j: b.j}] += a.v * b.v
			}
		}
	}

	keys := make([]gramKey, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].i != keys[b].i {
			return keys[a].i < keys[b].i
		}
		return keys[a].j < keys[b].j
	})

	out, err := sparse.NewCOO(cols, cols)
	if err != nil {
		panic(err)
	}
	for _, k := range keys {
		if acc[k] == 0 {
			continue
		}
		push(out, k.i, k.j, acc[k])
	}
	return out.ToCSR()
}
