// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/probability checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// NegativeTol is the slack below zero tolerated for probability entries,
// absorbing round-off from upstream normalisation.
const NegativeTol = 1e-16

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Typed-nil *Dense values are rejected as well.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateProbabilityVector checks that p is a non-empty vector of finite,
// non-negative entries (down to -NegativeTol) whose sum is within tol of 1.
//
// Errors:
//   - ErrNilMatrix for nil/empty input, ErrNaNInf for non-finite entries,
//     ErrNotProbability for negative entries or a bad sum.
//
// Complexity: O(len(p)).
func ValidateProbabilityVector(p []float64, tol float64) error {
	if len(p) == 0 {
		return validatorErrorf("ValidateProbabilityVector", ErrNilMatrix)
	}
	var sum float64
	for i, pi := range p {
		if math.IsNaN(pi) || math.IsInf(pi, 0) {
			return validatorErrorf("ValidateProbabilityVector", fmt.Errorf("entry %d: %w", i, ErrNaNInf))
		}
		if pi <= -NegativeTol {
			return validatorErrorf("ValidateProbabilityVector", fmt.Errorf("entry %d is negative (%g): %w", i, pi, ErrNotProbability))
		}
		sum += pi
	}
	if math.Abs(sum-1) >= tol {
		return validatorErrorf("ValidateProbabilityVector", fmt.Errorf("sum is %g: %w", sum, ErrNotProbability))
	}

	return nil
}

// ValidateRowStochastic checks that m is square and every row is a
// probability vector under ValidateProbabilityVector(row, tol).
//
// Complexity: O(n^2).
func ValidateRowStochastic(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	for i := 0; i < m.Rows(); i++ {
		row, err := Row(m, i)
		if err != nil {
			return validatorErrorf("ValidateRowStochastic", err)
		}
		if err = ValidateProbabilityVector(row, tol); err != nil {
			return validatorErrorf("ValidateRowStochastic", fmt.Errorf("row %d: %w", i, err))
		}
	}

	return nil
}
