// SPDX-License-Identifier: MIT

// Package matrix - kernels.
//
// Determinism & Policy:
//   - Fixed i→j (→k) loop orders; no map iteration.
//   - Operands are never mutated except by the explicitly in-place Pivot.
//   - nil operands return ErrNilMatrix rather than panicking.

package matrix

import "math"

const (
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opMul       = "Mul"
	opPivot     = "Pivot"
	opAllClose  = "AllClose"
)

// Transpose returns mᵀ.
// Complexity: O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out, _ := NewDense(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// MatVec returns y = m·x.
// Complexity: O(r·c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var s float64
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			s += v * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// Mul returns a·b.
// Complexity: O(r·n·c) with the cache-friendly i→k→j order.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out, _ := NewDense(a.r, b.c)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Pivot performs an in-place Gauss–Jordan pivot on (row, col): the pivot row
// is scaled so m[row,col] = 1 and col is eliminated from every other row.
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNaNInf when the pivot element is zero or non-finite.
//
// Complexity: O(r·c).
func Pivot(m *Dense, row, col int) error {
	if m == nil {
		return matrixErrorf(opPivot, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(opPivot, row, col, err)
	}
	p := m.data[off]
	if p == 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return denseErrorf(opPivot, row, col, ErrNaNInf)
	}
	pr := m.data[row*m.c : (row+1)*m.c]
	for j := range pr {
		pr[j] /= p
	}
	pr[col] = 1 // exact
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		ri := m.data[i*m.c : (i+1)*m.c]
		f := ri[col]
		if f == 0 {
			continue
		}
		for j := range ri {
			ri[j] -= f * pr[j]
		}
		ri[col] = 0 // exact
	}

	return nil
}

// AllClose reports whether |a-b| ≤ atol + rtol·|b| element-wise.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > atol+rtol*math.Abs(b.data[i]) {
			return false, nil
		}
	}

	return true, nil
}
