// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra layer used by the
// scenario-tree and risk packages.
//
// What
//
//   - Dense: a row-major float64 matrix with bounds-checked accessors.
//   - Constructors: NewDense, NewZeros, NewIdentity, NewOnes, NewFromRows.
//   - Kernels: Scale, Mul, MatVec, VStack, RowSums, Row.
//   - Validators: shape checks and probability checks (ValidateProbabilityVector,
//     ValidateRowStochastic) used to reject bad Markov-chain inputs early.
//
// Why
//
//	Ambiguity sets of coherent risk measures are written as (E, F, cone, b)
//	tuples; E and F are block matrices assembled by vertical stacking of
//	scaled identities and rows of ones. Transition matrices of the Markov
//	chain feeding the scenario tree are validated here as well.
//
// Errors
//
//	All public functions return package sentinels (ErrDimensionMismatch,
//	ErrOutOfRange, ErrNaNInf, ...) wrapped with a call-site tag. Match them
//	with errors.Is. No function panics on user input.
//
// Determinism
//
//	Every kernel walks rows then columns in a fixed order; results are
//	bit-for-bit reproducible for equal inputs.
package matrix
