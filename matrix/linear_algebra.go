// SPDX-License-Identifier: MIT

// Package matrix - constructors and kernels.
//
// Determinism & Policy:
//   - Fixed i→j loop orders; fast-paths on *Dense walk the flat slice.
//   - Operands are never mutated; every kernel allocates a fresh result.

package matrix

import "fmt"

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewOnes returns a rows×cols matrix filled with ones.
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = 1.0
	}

	return m, nil
}

// NewColumn returns a len(v)×1 column matrix holding a copy of v.
func NewColumn(v []float64) (*Dense, error) {
	m, err := NewDense(len(v), 1)
	if err != nil {
		return nil, err
	}
	for i, x := range v {
		if err = m.Set(i, 0, x); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ---------- Kernels ----------

// Scale returns alpha*m as a fresh Dense.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense.
	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Mul returns the matrix product a×b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ { // i→k→j keeps b row access contiguous
			if av, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			if av == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				res.data[i*cols+j] += av * bv
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var acc float64
		for i := 0; i < rows; i++ {
			acc = 0
			base := i * cols
			for j := 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}
		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VStack stacks blocks vertically: [blocks[0]; blocks[1]; ...].
// All blocks must share the same column count.
//
// Errors: ErrInvalidDimensions (no blocks), ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(total rows * cols).
func VStack(blocks ...Matrix) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf(opVStack, ErrInvalidDimensions)
	}
	rows, cols := 0, -1
	for idx, b := range blocks {
		if err := ValidateNotNil(b); err != nil {
			return nil, matrixErrorf(opVStack, fmt.Errorf("block %d: %w", idx, err))
		}
		if cols >= 0 && b.Cols() != cols {
			return nil, matrixErrorf(opVStack, fmt.Errorf("block %d has %d cols, want %d: %w", idx, b.Cols(), cols, ErrDimensionMismatch))
		}
		cols = b.Cols()
		rows += b.Rows()
	}

	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	offset := 0
	var v float64
	for _, b := range blocks {
		for i := 0; i < b.Rows(); i++ {
			for j := 0; j < cols; j++ {
				if v, err = b.At(i, j); err != nil {
					return nil, matrixErrorf(opVStack, err)
				}
				res.data[(offset+i)*cols+j] = v
			}
		}
		offset += b.Rows()
	}

	return res, nil
}

// Row returns a copy of row i of m.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func Row(m Matrix, i int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if i < 0 || i >= m.Rows() {
		return nil, matrixErrorf(opRow, ErrOutOfRange)
	}
	if d, ok := m.(*Dense); ok {
		return d.RawRow(i), nil
	}
	out := make([]float64, m.Cols())
	var err error
	for j := range out {
		if out[j], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opRow, err)
		}
	}

	return out, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
//
// AI-Hints: Used by Markov/stochastic normalization checks.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSum, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}
